package assets

import (
	"fmt"
	"os"
	"strings"
)

// ShaderSource holds the GLSL sources of a vertex/fragment program.
type ShaderSource struct {
	VertexPath   string
	FragmentPath string
	Vertex       string
	Fragment     string
}

// LoadShaderSource reads both stages from disk.
func LoadShaderSource(vertexPath, fragmentPath string) (*ShaderSource, error) {
	vertex, err := readShader(vertexPath)
	if err != nil {
		return nil, err
	}
	fragment, err := readShader(fragmentPath)
	if err != nil {
		return nil, err
	}
	return &ShaderSource{
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
		Vertex:       vertex,
		Fragment:     fragment,
	}, nil
}

func readShader(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrAssetNotFound, path)
		}
		return "", err
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyShader, path)
	}
	return string(data), nil
}

// Uses reports whether path is one of the program's stages.
func (s *ShaderSource) Uses(path string) bool {
	return s.VertexPath == path || s.FragmentPath == path
}
