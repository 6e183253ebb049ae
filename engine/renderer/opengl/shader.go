package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type stage struct {
	kind uint32
	name string
}

var (
	vertexStage   = stage{gl.VERTEX_SHADER, "vertex"}
	fragmentStage = stage{gl.FRAGMENT_SHADER, "fragment"}
)

// program is a linked shader program with its uniform locations.
type program struct {
	id         uint32
	view       int32
	projection int32
	texture    int32
	useTexture int32
}

func compileShader(source string, st stage) (uint32, error) {
	shader := gl.CreateShader(st.kind)
	csources, free := gl.Strs(cString(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s stage: %s", ErrShaderCompile, st.name, strings.TrimRight(log, "\x00\n"))
	}
	return shader, nil
}

func linkProgram(vertexSource, fragmentSource string) (*program, error) {
	vertex, err := compileShader(vertexSource, vertexStage)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compileShader(fragmentSource, fragmentStage)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertex)
	gl.AttachShader(id, fragment)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%w: %s", ErrShaderLink, strings.TrimRight(log, "\x00\n"))
	}

	return &program{
		id:         id,
		view:       uniformLocation(id, uniformView),
		projection: uniformLocation(id, uniformProjection),
		texture:    uniformLocation(id, uniformTexture),
		useTexture: uniformLocation(id, uniformUseTexture),
	}, nil
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cString(name)))
}

func (p *program) destroy() {
	if p != nil && p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
