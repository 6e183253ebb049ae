package assets

import "errors"

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrUnsupportedFormat = errors.New("unsupported asset format")
	ErrEmptyShader       = errors.New("shader source is empty")
	ErrManagerClosed     = errors.New("asset manager already closed")
)
