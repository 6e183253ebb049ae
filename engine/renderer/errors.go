package renderer

import "errors"

var (
	ErrNotInitialized = errors.New("renderer not initialized")
	ErrNoBackend      = errors.New("renderer backend is nil")
)
