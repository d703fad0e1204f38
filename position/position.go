package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8

	// TotalCells is the number of squares on the grid.
	TotalCells Pos = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index on the grid, row-major: Row()*MaxComponentScalar + Col().
type Pos int8

func NewPos(row, col int) Pos {
	return Pos(row*MaxComponentScalar + col)
}

func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(n)
	if err != nil {
		return 0, err
	}
	return NewPos(row, col), nil
}

// InBounds reports whether (row, col) lies on the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < MaxComponentScalar && col >= 0 && col < MaxComponentScalar
}

// IsDark reports whether (row, col) is a playable square.
func IsDark(row, col int) bool {
	return (row+col)%2 == 1
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Valid() bool {
	return p >= 0 && p < TotalCells
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return NotationComponentCol(p.Col()) + NotationComponentRow(p.Row())
}

func (p Pos) Row() int {
	return int(p) / MaxComponentScalar
}

func (p Pos) Col() int {
	return int(p) % MaxComponentScalar
}

func (p Pos) IsDark() bool {
	return IsDark(p.Row(), p.Col())
}

func notationToRowCol(n string) (int, int, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func notationToCol(c byte) (int, error) {
	col := int(c) - 'a'
	if col < 0 || MaxComponentScalar <= col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(r byte) (int, error) {
	row := int(r) - '1'
	if row < 0 || MaxComponentScalar <= row {
		return 0, ErrInvalidNotation
	}
	return row, nil
}

func NotationComponentCol(col int) string {
	if col < 0 || MaxComponentScalar <= col {
		return ""
	}
	return string(rune('a' + col))
}

func NotationComponentRow(row int) string {
	if row < 0 || MaxComponentScalar <= row {
		return ""
	}
	return string(rune('1' + row))
}
