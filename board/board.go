package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/daystram/makyek/position"
)

// UpdateFunc is notified after every PlaceAt.
type UpdateFunc func(mv Move)

// Board is the grid indexed [row][col]. Row 0 is White's back row.
// A Board is not safe for concurrent use.
type Board struct {
	cells [Height][Width]Cell

	onUpdate UpdateFunc
	logger   *zap.Logger
}

type boardConfig struct {
	layout   string
	onUpdate UpdateFunc
	logger   *zap.Logger
}

type BoardOption func(*boardConfig)

func WithLayout(layout string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.layout = layout
	}
}

func WithUpdateHandler(fn UpdateFunc) BoardOption {
	return func(cfg *boardConfig) {
		cfg.onUpdate = fn
	}
}

func WithLogger(logger *zap.Logger) BoardOption {
	return func(cfg *boardConfig) {
		cfg.logger = logger
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		logger: zap.NewNop(),
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{
		onUpdate: cfg.onUpdate,
		logger:   cfg.logger,
	}
	if cfg.layout == "" {
		b.Reset()
		return b, nil
	}
	if err := UnmarshalLayout(cfg.layout, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset restores the starting position.
func (b *Board) Reset() {
	b.cells = [Height][Width]Cell{}
	for col := 1; col < Width; col += 2 {
		b.cells[0][col] = CellWhite
		b.cells[2][col] = CellWhite
		b.cells[6][col] = CellBlack
	}
	for col := 0; col < Width; col += 2 {
		b.cells[1][col] = CellWhite
		b.cells[5][col] = CellBlack
		b.cells[7][col] = CellBlack
	}
}

// InBounds reports whether (row, col) is a playable square of the grid.
func (b *Board) InBounds(row, col int) bool {
	return position.InBounds(row, col) && position.IsDark(row, col)
}

func (b *Board) Cell(row, col int) Cell {
	if !position.InBounds(row, col) {
		return CellEmpty
	}
	return b.cells[row][col]
}

func (b *Board) At(pos position.Pos) Cell {
	return b.Cell(pos.Row(), pos.Col())
}

func (b *Board) isEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row][col] == CellEmpty
}

// HasAvailablePlacement reports whether s has a simple step onto an empty
// square. Jumps are not considered.
func (b *Board) HasAvailablePlacement(s Side) (bool, error) {
	if err := ValidatePlayerSide(s); err != nil {
		return false, err
	}

	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			switch b.cells[row][col] {
			case s.Man():
				fwd := row + s.Forward()
				if b.isEmpty(fwd, col-1) || b.isEmpty(fwd, col+1) {
					return true, nil
				}
			case s.King():
				if b.isEmpty(row+1, col-1) || b.isEmpty(row+1, col+1) ||
					b.isEmpty(row-1, col-1) || b.isEmpty(row-1, col+1) {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

// isForward is always true for a king; a man may only step toward its
// promotion row.
func (b *Board) isForward(s Side, fromRow, fromCol, toRow int) bool {
	if b.cells[fromRow][fromCol] == s.King() {
		return true
	}
	if s == SideBlack {
		return fromRow > toRow
	}
	return toRow > fromRow
}

// CanPlaceAt checks a single step or a single jump without mutating the board.
// Jumps are not direction restricted, a man may capture backward.
func (b *Board) CanPlaceAt(s Side, fromRow, fromCol, toRow, toCol int) bool {
	if !position.InBounds(fromRow, fromCol) || !position.InBounds(toRow, toCol) {
		return false
	}
	// SideUnknown would otherwise own every empty cell.
	if ValidatePlayerSide(s) != nil {
		return false
	}
	if !b.cells[fromRow][fromCol].BelongsTo(s) {
		return false
	}

	dRow, dCol := abs(toRow-fromRow), abs(toCol-fromCol)
	switch {
	case dRow == 1 && dCol == 1:
		if !b.isForward(s, fromRow, fromCol, toRow) {
			return false
		}
		return b.cells[toRow][toCol] == CellEmpty
	case dRow == 2 && dCol == 2:
		midRow, midCol := (fromRow+toRow)/2, (fromCol+toCol)/2
		return b.cells[midRow][midCol].BelongsTo(GetOtherSide(s)) && b.cells[toRow][toCol] == CellEmpty
	default:
		return false
	}
}

// PlaceAt applies a move previously accepted by CanPlaceAt; any other move
// leaves the board in an unspecified state. isLastStep marks the final hop of
// a turn and gates promotion.
func (b *Board) PlaceAt(s Side, fromRow, fromCol, toRow, toCol int, isLastStep bool) {
	mv := Move{
		From: position.NewPos(fromRow, fromCol),
		To:   position.NewPos(toRow, toCol),
		Side: s,
	}
	mv.Option, _ = OptionFromDelta(toRow-fromRow, toCol-fromCol)

	dRow, dCol := abs(toRow-fromRow), abs(toCol-fromCol)
	switch {
	case dRow == 1 && dCol == 1:
		b.cells[toRow][toCol] = b.cells[fromRow][fromCol]
		b.cells[fromRow][fromCol] = CellEmpty
	case dRow == 2 && dCol == 2:
		b.cells[toRow][toCol] = b.cells[fromRow][fromCol]
		b.cells[fromRow][fromCol] = CellEmpty
		b.cells[(fromRow+toRow)/2][(fromCol+toCol)/2] = CellEmpty
		mv.IsCapture = true
	}

	if isLastStep && toRow == s.PromotionRow() && b.cells[toRow][toCol] == s.Man() {
		b.cells[toRow][toCol] += KingOffset
		mv.IsPromote = true
	}

	b.logger.Debug("piece placed",
		zap.Stringer("move", mv),
		zap.Stringer("side", s),
		zap.Stringer("option", mv.Option),
		zap.Bool("capture", mv.IsCapture),
		zap.Bool("promote", mv.IsPromote),
		zap.Bool("last_step", isLastStep),
	)

	if b.onUpdate != nil {
		b.onUpdate(mv)
	}
}

// Count returns the material per side keyed by CellBlack and CellWhite, where a
// king weighs 3 and a man 1, and the number of empty cells keyed by CellEmpty.
func (b *Board) Count() map[Cell]int {
	analytics := map[Cell]int{
		CellEmpty: 0,
		CellBlack: 0,
		CellWhite: 0,
	}
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			c := b.cells[row][col]
			if c.IsEmpty() {
				analytics[CellEmpty]++
				continue
			}
			analytics[c.Side().Man()] += c.Weight()
		}
	}
	return analytics
}

// GetOtherSide returns KingOffset - s without validating s.
func (b *Board) GetOtherSide(s Side) Side {
	return GetOtherSide(s)
}

func (b *Board) Layout() string {
	layout, _ := MarshalLayout(b)
	return layout
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := Height - 1; row >= 0; row-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", row+1))
		for col := 0; col < Width; col++ {
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", string(b.cells[row][col].SymbolLayout())))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentCol(col)))
	}
	return builder.String()
}

var (
	colorLabel      = color.New(color.Bold)
	colorDarkWhite  = color.New(color.FgHiWhite, color.BgGreen)
	colorDarkBlack  = color.New(color.FgBlack, color.BgGreen)
	colorLightEmpty = color.New(color.BgHiWhite)
)

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for row := Height - 1; row >= 0; row-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", row+1))
		for col := 0; col < Width; col++ {
			c := b.cells[row][col]
			sym := fmt.Sprintf(" %s ", c.SymbolUnicode())
			switch {
			case !position.IsDark(row, col):
				_, _ = builder.WriteString(colorLightEmpty.Sprint(sym))
			case c.Side() == SideWhite:
				_, _ = builder.WriteString(colorDarkWhite.Sprint(sym))
			default:
				_, _ = builder.WriteString(colorDarkBlack.Sprint(sym))
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := 0; col < Width; col++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", position.NotationComponentCol(col)))
	}
	return builder.String()
}

// Clone copies the grid and logger. The update handler is not carried over.
func (b *Board) Clone() *Board {
	return &Board{
		cells:  b.cells,
		logger: b.logger,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
