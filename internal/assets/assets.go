// Package assets loads the two static images the game draws: the monster
// sprite and the background strip. Both are plain text art. Embedded
// defaults are used unless a file path overrides them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

//go:embed data/monster.txt data/background.txt
var embedded embed.FS

const (
	defaultSpritePath     = "data/monster.txt"
	defaultBackgroundPath = "data/background.txt"
)

var (
	// ErrAssetMissing is returned when an asset file does not exist or cannot be read.
	ErrAssetMissing = errors.New("asset missing or unreadable")
	// ErrAssetEmpty is returned when an asset file holds no drawable content.
	ErrAssetEmpty = errors.New("asset is empty")
	// ErrAssetInvalid is returned when an asset file is not text art.
	ErrAssetInvalid = errors.New("asset is not valid text")
)

// Image is a block of text art. Lines are padded to the same width.
type Image struct {
	Name   string
	Lines  [][]rune
	Width  int
	Height int
}

// At returns the rune at (x, y), or a space outside the image.
func (img Image) At(x, y int) rune {
	if y < 0 || y >= img.Height || x < 0 || x >= img.Width {
		return ' '
	}
	return img.Lines[y][x]
}

// Assets bundles everything loaded at startup.
type Assets struct {
	Sprite     Image
	Background Image
}

// Paths selects override files. Empty fields use the embedded defaults.
type Paths struct {
	Sprite     string
	Background string
}

// Load reads both assets. Any failure is fatal for startup, so the error
// names the asset and the path that failed.
func Load(p Paths) (*Assets, error) {
	sprite, err := loadImage("sprite", p.Sprite, defaultSpritePath)
	if err != nil {
		return nil, err
	}
	background, err := loadImage("background", p.Background, defaultBackgroundPath)
	if err != nil {
		return nil, err
	}
	return &Assets{Sprite: sprite, Background: background}, nil
}

// Default returns the embedded assets. It panics only if the binary was
// built without them.
func Default() *Assets {
	a, err := Load(Paths{})
	if err != nil {
		panic(err)
	}
	return a
}

func loadImage(name, override, fallback string) (Image, error) {
	var (
		data   []byte
		err    error
		source = override
	)
	if override != "" {
		data, err = os.ReadFile(override)
	} else {
		source = "embedded:" + fallback
		data, err = fs.ReadFile(embedded, fallback)
	}
	if err != nil {
		return Image{}, fmt.Errorf("assets: cannot load %s from %s: %w (%w)", name, source, ErrAssetMissing, err)
	}

	img, err := Parse(name, data)
	if err != nil {
		return Image{}, fmt.Errorf("assets: cannot load %s from %s: %w", name, source, err)
	}
	return img, nil
}

// Parse converts text art into an Image. Trailing blank lines are dropped
// and every line is padded with spaces to the widest one.
func Parse(name string, data []byte) (Image, error) {
	if !utf8.Valid(data) {
		return Image{}, fmt.Errorf("%s is not UTF-8: %w", name, ErrAssetInvalid)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	raw := strings.Split(strings.TrimRight(text, "\n "), "\n")

	img := Image{Name: name}
	for _, line := range raw {
		runes := []rune(strings.TrimRight(line, " "))
		img.Width = max(img.Width, len(runes))
		img.Lines = append(img.Lines, runes)
	}
	if img.Width == 0 {
		return Image{}, ErrAssetEmpty
	}

	for i, line := range img.Lines {
		if pad := img.Width - len(line); pad > 0 {
			img.Lines[i] = append(line, []rune(strings.Repeat(" ", pad))...)
		}
	}
	img.Height = len(img.Lines)
	return img, nil
}
