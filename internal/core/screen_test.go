package core

import "testing"

// rowRunes reads row y back out of the buffer.
func rowRunes(s *Screen, y int) string {
	runes := make([]rune, s.Width())
	for x := range runes {
		runes[x] = s.GetCell(x, y).Rune
	}
	return string(runes)
}

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		if got := rowRunes(s, y); got != "      " {
			t.Errorf("row %d = %q, expected blanks", y, got)
		}
	}

	neg := NewScreen(-4, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenSetColoredClips(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], 'x', ColorRed) // must not panic
	}
	s.SetColored(3, 1, 'o', ColorGreen)

	if c := s.GetCell(3, 1); c.Rune != 'o' || c.Color != ColorGreen {
		t.Errorf("GetCell(3, 1) = %+v, expected green 'o'", c)
	}
	if c := s.GetCell(9, 9); c != blankCell {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", c)
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(7, 0, "Score", ColorYellow)
	if got := rowRunes(s, 0); got != "       Sco" {
		t.Errorf("clipped text row = %q", got)
	}
	if s.GetCell(7, 0).Color != ColorYellow {
		t.Error("text colour not applied")
	}

	s.DrawTextCentered(1, "ab")
	if got := rowRunes(s, 1); got != "    ab    " {
		t.Errorf("centered row = %q", got)
	}

	// Width is counted in runes, not bytes.
	s.DrawTextCentered(2, "░░")
	if got := rowRunes(s, 2); got != "    ░░    " {
		t.Errorf("centered multibyte row = %q", got)
	}
}

func TestScreenRectsAndLines(t *testing.T) {
	s := NewScreen(8, 5)

	s.DrawRectColored(NewCellRect(1, 1, 3, 2), '█', ColorGreen)
	s.DrawHLine(0, 4, 8, '▀', ColorYellow)

	tests := []struct {
		x, y  int
		want  rune
		color Color
	}{
		{1, 1, '█', ColorGreen},
		{3, 2, '█', ColorGreen},
		{4, 1, ' ', ColorDefault},
		{1, 3, ' ', ColorDefault},
		{0, 4, '▀', ColorYellow},
		{7, 4, '▀', ColorYellow},
	}
	for _, tc := range tests {
		if c := s.GetCell(tc.x, tc.y); c.Rune != tc.want || c.Color != tc.color {
			t.Errorf("GetCell(%d, %d) = %+v, expected %q/%v", tc.x, tc.y, c, tc.want, tc.color)
		}
	}

	s.DrawRect(NewCellRect(0, 0, 8, 5), ' ')
	if got := rowRunes(s, 1); got != "        " {
		t.Errorf("DrawRect with spaces should blank the area, got %q", got)
	}
}

func TestScreenBoxColored(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColored(NewCellRect(0, 0, 6, 4), ColorCyan)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, w := range want {
		if got := rowRunes(s, y); got != w {
			t.Errorf("row %d = %q, expected %q", y, got, w)
		}
	}
	if s.GetCell(0, 0).Color != ColorCyan || s.GetCell(1, 1).Color != ColorDefault {
		t.Error("only the outline should be coloured")
	}
}

func TestScreenResizeAndClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "abcd", ColorRed)

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if got := rowRunes(s, 0); got != "ab" {
		t.Errorf("resize should keep overlapping content, got %q", got)
	}
	if got := rowRunes(s, 2); got != "  " {
		t.Errorf("new rows should be blank, got %q", got)
	}

	s.Clear()
	if c := s.GetCell(0, 0); c != blankCell {
		t.Errorf("Clear should reset rune and colour, got %+v", c)
	}
}
