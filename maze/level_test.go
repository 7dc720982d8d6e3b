package maze

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLevelCounts(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		placed int
		free   int
	}{
		{"empty", "", 0, 0},
		{"single_wall", "x", 1, 0},
		{"corners", "x x\n   \nx x", 4, 5},
		{"trailing_newline", "xsv\nfg \n", 5, 1},
		{"crlf", "x \r\n x\r\n", 2, 2},
		{"ragged_rows", "xxxx\nx\nxx  ", 7, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := ParseLevel(tc.text)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(layout.Placements) != tc.placed {
				t.Fatalf("expected %d placements, got %d", tc.placed, len(layout.Placements))
			}
			if len(layout.Free) != tc.free {
				t.Fatalf("expected %d free cells, got %d", tc.free, len(layout.Free))
			}
			clean := strings.TrimSuffix(strings.ReplaceAll(tc.text, "\r", ""), "\n")
			chars := len(strings.ReplaceAll(clean, "\n", ""))
			if layout.Cells() != chars {
				t.Fatalf("placed+free = %d, want character count %d", layout.Cells(), chars)
			}
		})
	}
}

func TestParseLevelCornerPositions(t *testing.T) {
	layout, err := ParseLevel("x x\n   \nx x")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := map[Vec]bool{
		{X: 32, Y: 32}:   true,
		{X: 160, Y: 32}:  true,
		{X: 32, Y: 160}:  true,
		{X: 160, Y: 160}: true,
	}
	for _, p := range layout.Placements {
		if p.Role != RoleWall {
			t.Fatalf("expected wall, got %v", p.Role)
		}
		if !want[p.Pos] {
			t.Fatalf("unexpected wall position %+v", p.Pos)
		}
		delete(want, p.Pos)
	}
	if len(want) != 0 {
		t.Fatalf("missing walls at %v", want)
	}

	middle := 0
	for _, f := range layout.Free {
		if f.Y == 96 {
			middle++
		}
	}
	if middle != 3 {
		t.Fatalf("expected 3 free cells in the middle row, got %d", middle)
	}
}

func TestParseLevelBottomToTop(t *testing.T) {
	layout, err := ParseLevel("f\ns")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, p := range layout.Placements {
		switch p.Role {
		case RoleStar:
			if p.Row != 0 || p.Pos.Y != 32 {
				t.Fatalf("star should sit on the bottom row, got row=%d y=%v", p.Row, p.Pos.Y)
			}
		case RoleFinish:
			if p.Row != 1 || p.Pos.Y != 96 {
				t.Fatalf("finish should sit on row 1, got row=%d y=%v", p.Row, p.Pos.Y)
			}
		}
	}
}

func TestParseLevelRoles(t *testing.T) {
	layout, err := ParseLevel("xvsfg")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Role{RoleWall, RoleVortex, RoleStar, RoleFinish, RoleTeleporter}
	for i, p := range layout.Placements {
		if p.Role != want[i] {
			t.Fatalf("placement %d: expected %v, got %v", i, want[i], p.Role)
		}
		if p.Pos.X != float64(64*i+32) {
			t.Fatalf("placement %d: expected x=%d, got %v", i, 64*i+32, p.Pos.X)
		}
	}
}

func TestParseLevelUnknownTile(t *testing.T) {
	_, err := ParseLevel("xx\nx?x")
	if err == nil {
		t.Fatal("expected error for unknown tile")
	}
	if !errors.Is(err, ErrUnknownTile) {
		t.Fatalf("expected ErrUnknownTile, got %v", err)
	}
	var te *TileError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TileError, got %T", err)
	}
	if te.Char != '?' || te.Line != 1 || te.Column != 1 {
		t.Fatalf("unexpected tile error location: %+v", te)
	}
}
