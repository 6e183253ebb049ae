package opengl

import "errors"

var (
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrShaderLink    = errors.New("shader program link failed")
	ErrInvalidImage  = errors.New("texture has no pixels")
)
