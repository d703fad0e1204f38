package board

type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// KingOffset is added to a man to make it a king. CellBlack + CellWhite must
// equal KingOffset.
const KingOffset = CellBlack + CellWhite

const (
	CellBlackKing = CellBlack + KingOffset
	CellWhiteKing = CellWhite + KingOffset
)

const (
	manWeight  = 1
	kingWeight = 3
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	case CellBlackKing:
		return "BlackKing"
	case CellWhiteKing:
		return "WhiteKing"
	default:
		return ""
	}
}

func (c Cell) Valid() bool {
	return c <= CellWhiteKing && c != KingOffset
}

func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

func (c Cell) IsKing() bool {
	return c > KingOffset
}

// Side returns the owner of the piece, SideUnknown for an empty cell.
func (c Cell) Side() Side {
	if c.IsKing() {
		return Side(c - KingOffset)
	}
	return Side(c)
}

// BelongsTo checks both the man and the king state of s.
func (c Cell) BelongsTo(s Side) bool {
	return c == s.Man() || c == s.King()
}

// Weight is the value of the cell in Count: a king is worth 3 men.
func (c Cell) Weight() int {
	switch {
	case c.IsEmpty():
		return 0
	case c.IsKing():
		return kingWeight
	default:
		return manWeight
	}
}

// SymbolLayout is the layout symbol of the cell: lowercase men, uppercase kings.
func (c Cell) SymbolLayout() byte {
	switch c {
	case CellBlack:
		return 'o'
	case CellWhite:
		return 'x'
	case CellBlackKing:
		return 'O'
	case CellWhiteKing:
		return 'X'
	default:
		return '.'
	}
}

func (c Cell) SymbolUnicode() string {
	switch c {
	case CellBlack:
		return "⛂"
	case CellWhite:
		return "⛀"
	case CellBlackKing:
		return "⛃"
	case CellWhiteKing:
		return "⛁"
	default:
		return " "
	}
}

func cellFromSymbol(sym byte) (Cell, bool) {
	switch sym {
	case '.':
		return CellEmpty, true
	case 'o':
		return CellBlack, true
	case 'x':
		return CellWhite, true
	case 'O':
		return CellBlackKing, true
	case 'X':
		return CellWhiteKing, true
	default:
		return CellEmpty, false
	}
}
