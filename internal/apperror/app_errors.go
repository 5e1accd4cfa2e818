package apperror

import "errors"

var (
	ErrInvalidRow    = errors.New("invalid row identifier")
	ErrInvalidVertex = errors.New("invalid vertex")
	ErrEmptyPoint    = errors.New("can't count liberties of an empty point")
	ErrIllegalMove   = errors.New("illegal move")
	ErrUnknownColor  = errors.New("unknown color")
	ErrGameNotFound  = errors.New("game not found")
)
