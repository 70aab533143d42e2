package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	a, err := Load(Paths{})
	if err != nil {
		t.Fatalf("Load() with embedded defaults failed: %v", err)
	}
	if a.Sprite.Width == 0 || a.Sprite.Height == 0 {
		t.Errorf("default sprite is empty: %+v", a.Sprite)
	}
	if a.Background.Width == 0 || a.Background.Height == 0 {
		t.Errorf("default background is empty: %+v", a.Background)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bird.txt")
	if err := os.WriteFile(path, []byte(">o\n==>\n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	a, err := Load(Paths{Sprite: path})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if a.Sprite.Width != 3 || a.Sprite.Height != 2 {
		t.Errorf("sprite size = %dx%d, expected 3x2", a.Sprite.Width, a.Sprite.Height)
	}
	if a.Sprite.At(2, 0) != ' ' {
		t.Errorf("short lines should be padded, got %q", a.Sprite.At(2, 0))
	}
}

func TestLoadMissingAsset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := Load(Paths{Background: path})
	if err == nil {
		t.Fatal("Load() should fail for a missing background")
	}
	if !errors.Is(err, ErrAssetMissing) {
		t.Errorf("error should wrap ErrAssetMissing, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should keep the underlying cause, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "background") || !strings.Contains(msg, path) {
		t.Errorf("diagnostic should name the asset and path, got %q", msg)
	}
}

func TestLoadEmptyAsset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	if err := os.WriteFile(path, []byte("   \n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(Paths{Sprite: path})
	if !errors.Is(err, ErrAssetEmpty) {
		t.Fatalf("expected ErrAssetEmpty, got %v", err)
	}
}

func TestLoadBinaryAsset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monster.png")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G', 0xff, 0xfe}, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(Paths{Sprite: path})
	if !errors.Is(err, ErrAssetInvalid) {
		t.Fatalf("expected ErrAssetInvalid, got %v", err)
	}
	if errors.Is(err, ErrAssetEmpty) {
		t.Error("binary asset must not be reported as empty")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("diagnostic should name the path, got %q", err)
	}
}

func TestImageAtOutOfBounds(t *testing.T) {
	img, err := Parse("x", []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if img.At(-1, 0) != ' ' || img.At(5, 0) != ' ' || img.At(0, 3) != ' ' {
		t.Error("At() outside the image should return a space")
	}
	if img.At(1, 0) != 'b' {
		t.Errorf("At(1, 0) = %q, expected 'b'", img.At(1, 0))
	}
}
