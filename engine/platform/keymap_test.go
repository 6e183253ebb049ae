package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/kiln/engine/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want input.KeyCode
	}{
		{glfw.KeyA, input.KEY_A},
		{glfw.KeyZ, input.KEY_Z},
		{glfw.Key0, input.KEY_0},
		{glfw.Key9, input.KEY_9},
		{glfw.KeyF1, input.KEY_F1},
		{glfw.KeyF12, input.KEY_F12},
		{glfw.KeyKP5, input.KEY_NUMPAD5},
		{glfw.KeyEscape, input.KEY_ESCAPE},
		{glfw.KeyLeftShift, input.KEY_LSHIFT},
		{glfw.KeyUp, input.KEY_UP},
	}
	for _, tt := range tests {
		got, ok := translateKey(tt.key)
		if !ok || got != tt.want {
			t.Errorf("translateKey(%v) = %v, %v; want %v", tt.key, got, ok, tt.want)
		}
	}

	if _, ok := translateKey(glfw.KeyUnknown); ok {
		t.Error("unknown key translated")
	}
}
