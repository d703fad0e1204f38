package board

type Side uint8

// Sides share their numeric value with the side's man cell, so a side's
// opposite is always KingOffset - side.
const (
	SideUnknown Side = iota
	SideBlack
	SideWhite
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

// Opposite is GetOtherSide. The result is meaningless for SideUnknown.
func (s Side) Opposite() Side {
	return GetOtherSide(s)
}

// GetOtherSide returns KingOffset - s without validating s.
func GetOtherSide(s Side) Side {
	return Side(KingOffset) - s
}

// Man returns the cell state of a non-promoted piece of this side.
func (s Side) Man() Cell {
	return Cell(s)
}

// King returns the cell state of a promoted piece of this side.
func (s Side) King() Cell {
	return Cell(s) + KingOffset
}

// Forward is the row delta of a man's step: black moves toward row 0,
// white toward the last row.
func (s Side) Forward() int {
	if s == SideBlack {
		return -1
	}
	return 1
}

// PromotionRow is the opposing back row where a man becomes a king.
func (s Side) PromotionRow() int {
	if s == SideBlack {
		return 0
	}
	return Height - 1
}
