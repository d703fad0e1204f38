package board

import "github.com/daystram/makyek/position"

// Move describes a placement applied by Board.PlaceAt.
type Move struct {
	From, To position.Pos
	Side     Side
	Option   Option

	IsCapture bool
	IsPromote bool
}

func (m Move) String() string {
	return m.Notation()
}

func (m Move) Notation() string {
	sep := "-"
	if m.IsCapture {
		sep = "x"
	}
	nt := m.From.Notation() + sep + m.To.Notation()
	if m.IsPromote {
		nt += "K"
	}
	return nt
}

// Captured returns the square of the piece removed by a jump.
func (m Move) Captured() (position.Pos, bool) {
	if !m.IsCapture {
		return 0, false
	}
	return position.NewPos((m.From.Row()+m.To.Row())/2, (m.From.Col()+m.To.Col())/2), true
}
