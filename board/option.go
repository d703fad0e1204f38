package board

// Option is a move direction. Up is toward row 0.
type Option uint8

const (
	OptionUp Option = iota
	OptionDown
	OptionLeft
	OptionRight
	OptionUpLeft
	OptionUpRight
	OptionDownLeft
	OptionDownRight

	optionCount
)

var optionDelta = [optionCount][2]int{
	OptionUp:        {-1, 0},
	OptionDown:      {1, 0},
	OptionLeft:      {0, -1},
	OptionRight:     {0, 1},
	OptionUpLeft:    {-1, -1},
	OptionUpRight:   {-1, 1},
	OptionDownLeft:  {1, -1},
	OptionDownRight: {1, 1},
}

func (o Option) String() string {
	switch o {
	case OptionUp:
		return "Up"
	case OptionDown:
		return "Down"
	case OptionLeft:
		return "Left"
	case OptionRight:
		return "Right"
	case OptionUpLeft:
		return "UpLeft"
	case OptionUpRight:
		return "UpRight"
	case OptionDownLeft:
		return "DownLeft"
	case OptionDownRight:
		return "DownRight"
	default:
		return ""
	}
}

func (o Option) Valid() bool {
	return o < optionCount
}

// Delta returns the unit (row, col) step of the option.
func (o Option) Delta() (int, int) {
	if !o.Valid() {
		return 0, 0
	}
	return optionDelta[o][0], optionDelta[o][1]
}

// OptionFromDelta resolves the direction of a displacement from its signs.
// A zero displacement has no direction.
func OptionFromDelta(dRow, dCol int) (Option, bool) {
	dRow, dCol = sign(dRow), sign(dCol)
	for o, d := range optionDelta {
		if d[0] == dRow && d[1] == dCol {
			return Option(o), true
		}
	}
	return optionCount, false
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
