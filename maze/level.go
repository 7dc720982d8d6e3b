package maze

import (
	"errors"
	"fmt"
	"strings"
)

// CellSize is the edge length of one grid cell in world units.
const CellSize = 64.0

// ErrUnknownTile is returned (wrapped in a *TileError) when a level
// contains a character outside the tile alphabet.
var ErrUnknownTile = errors.New("maze: unknown level tile")

// TileError locates an unknown character. Line and Column are zero-based and
// count from the top-left of the text.
type TileError struct {
	Line   int
	Column int
	Char   rune
}

func (e *TileError) Error() string {
	return fmt.Sprintf("maze: unknown level tile %q at line %d column %d", e.Char, e.Line+1, e.Column+1)
}

func (e *TileError) Is(target error) bool {
	return target == ErrUnknownTile
}

// Placement is one entity the loader asks the host to create.
type Placement struct {
	Role Role
	Pos  Vec
	Row  int // grid row counted from the bottom
	Col  int
}

// Layout is a parsed level.
type Layout struct {
	Placements []Placement
	Free       []Vec
	Rows       int
	Cols       int
}

// Cells returns the number of characters the layout was built from.
func (l *Layout) Cells() int {
	if l == nil {
		return 0
	}
	return len(l.Placements) + len(l.Free)
}

// CellCenter returns the world position of a grid cell.
func CellCenter(row, col int) Vec {
	return Vec{
		X: CellSize*float64(col) + CellSize/2,
		Y: CellSize*float64(row) + CellSize/2,
	}
}

// ParseLevel turns level text into placements and free cells. The last text
// line becomes grid row 0, so the first line of the file is the top of the
// screen. A single trailing newline is ignored.
func ParseLevel(text string) (*Layout, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	layout := &Layout{Rows: len(lines)}
	if text == "" {
		layout.Rows = 0
		return layout, nil
	}

	for row := 0; row < len(lines); row++ {
		lineIdx := len(lines) - 1 - row
		col := 0
		for _, ch := range lines[lineIdx] {
			role, ok := RoleForTile(ch)
			if !ok {
				return nil, &TileError{Line: lineIdx, Column: col, Char: ch}
			}
			pos := CellCenter(row, col)
			if role == RoleNone {
				layout.Free = append(layout.Free, pos)
			} else {
				layout.Placements = append(layout.Placements, Placement{Role: role, Pos: pos, Row: row, Col: col})
			}
			col++
		}
		if col > layout.Cols {
			layout.Cols = col
		}
	}

	return layout, nil
}
