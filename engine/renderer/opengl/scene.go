package opengl

// Vertex layout of the default scene: position (3), color (3), uv (2).
const (
	positionSize = 3
	colorSize    = 3
	uvSize       = 2
	floatSize    = 4

	vertexFloats = positionSize + colorSize + uvSize
	vertexStride = vertexFloats * floatSize
)

// triangleVertices is the default scene: one triangle in the z = 0 plane.
var triangleVertices = []float32{
	// position       color          uv
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 1.0, 0.0, 0.5, 1.0,
	0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 1.0, 0.0,
}

func vertexCount(vertices []float32) int32 {
	return int32(len(vertices) / vertexFloats)
}

// Uniforms understood by the backend. Programs may omit any of them.
const (
	uniformView       = "u_view"
	uniformProjection = "u_projection"
	uniformTexture    = "u_texture"
	uniformUseTexture = "u_use_texture"
)

const defaultVertexShader = `#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;
layout (location = 2) in vec2 uv;

uniform mat4 u_view;
uniform mat4 u_projection;

out vec3 v_color;
out vec2 v_uv;

void main() {
    gl_Position = u_projection * u_view * vec4(position, 1.0);
    v_color = color;
    v_uv = uv;
}
`

const defaultFragmentShader = `#version 410 core

in vec3 v_color;
in vec2 v_uv;

uniform sampler2D u_texture;
uniform bool u_use_texture;

out vec4 frag_color;

void main() {
    vec4 base = vec4(v_color, 1.0);
    if (u_use_texture) {
        base *= texture(u_texture, v_uv);
    }
    frag_color = base;
}
`

// cString returns s terminated by a NUL byte, as the GL entry points expect.
func cString(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0 {
		return s
	}
	return s + "\x00"
}
