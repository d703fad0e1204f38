package board

import (
	"fmt"
	"strings"

	"github.com/daystram/makyek/position"
)

const layoutRowSeparator = "/"

// UnmarshalLayout replaces the grid of b with the one described by layout.
// b is left untouched on error.
func UnmarshalLayout(layout string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}

	rows := strings.Split(layout, layoutRowSeparator)
	if len(rows) != Height {
		return fmt.Errorf("%w: incorrect number of rows", ErrInvalidLayout)
	}

	var cells [Height][Width]Cell
	for row := 0; row < Height; row++ {
		if len(rows[row]) != Width {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidLayout, row, len(rows[row]))
		}
		for col := 0; col < Width; col++ {
			c, ok := cellFromSymbol(rows[row][col])
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidLayout, string(rows[row][col]))
			}
			if c != CellEmpty && !position.IsDark(row, col) {
				return fmt.Errorf("%w: piece on light square %s", ErrInvalidLayout, position.NewPos(row, col))
			}
			cells[row][col] = c
		}
	}
	b.cells = cells
	return nil
}

func MarshalLayout(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}

	builder := strings.Builder{}
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			_ = builder.WriteByte(b.cells[row][col].SymbolLayout())
		}
		if row < Height-1 {
			_, _ = builder.WriteString(layoutRowSeparator)
		}
	}
	return builder.String(), nil
}
