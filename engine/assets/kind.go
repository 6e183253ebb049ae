package assets

import (
	"path/filepath"
	"strings"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindShader
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindTexture:
		return "texture"
	default:
		return "none"
	}
}

// DetectKind classifies a file by its extension.
func DetectKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vert", ".frag", ".vs", ".fs", ".glsl":
		return KindShader
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return KindTexture
	default:
		return KindNone
	}
}
