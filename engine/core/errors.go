package core

import (
	"errors"
)

var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrNoGraphicsContext = errors.New("no compatible graphics context")
)
