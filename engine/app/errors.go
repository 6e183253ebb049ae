package app

import "errors"

var (
	ErrBuilderSealed   = errors.New("builder already has a runner and cannot be configured")
	ErrBuilderConsumed = errors.New("builder already built")
	ErrNoRunner        = errors.New("runner is nil")
	ErrDuplicatePlugin = errors.New("plugin already added")
	ErrInvalidPlugin   = errors.New("plugin returned no builder")
	ErrAppShutdown     = errors.New("app already shut down")
)
