package core

import "errors"

var (
	ErrAttach            = errors.New("overlay attach failed")
	ErrNoWindow          = errors.New("no window factory")
	ErrNoRenderer        = errors.New("no renderer factory")
	ErrUnsupportedConfig = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)
