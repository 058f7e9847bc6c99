package options

import "errors"

var (
	ErrInvalidOption      = errors.New("invalid option")
	ErrType               = errors.New("wrong argument type")
	ErrInvariantViolation = errors.New("options invariant violated")
	ErrConfig             = errors.New("unable to decode options config")
)
