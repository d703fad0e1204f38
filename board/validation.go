package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidLayout   = errors.New("invalid layout")
)

func ValidatePlayerSide(s Side) error {
	if s != SideBlack && s != SideWhite {
		return fmt.Errorf("%w: invalid player side %d", ErrInvalidArgument, s)
	}
	return nil
}

func ValidatePlayerOption(o Option) error {
	if !o.Valid() {
		return fmt.Errorf("%w: invalid player option %d", ErrInvalidArgument, o)
	}
	return nil
}
