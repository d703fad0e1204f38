package board

import "github.com/daystram/makyek/position"

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

// DefaultLayout is the starting position, row 0 first.
const DefaultLayout = ".x.x.x.x/x.x.x.x./.x.x.x.x/......../......../o.o.o.o./.o.o.o.o/o.o.o.o."
