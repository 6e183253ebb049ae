package math

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		v, low, high, w float32
	}{
		{"below", -2, 1, 45, 1},
		{"above", 50, 1, 45, 45},
		{"inside", 30, 1, 45, 30},
		{"at bound", 45, 1, 45, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.low, tt.high); got != tt.w {
				t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.w)
			}
		})
	}
	if got := Clamp(7, 0, 5); got != 5 {
		t.Errorf("int Clamp = %d", got)
	}
}

func TestLerpAndSign(t *testing.T) {
	if got := Lerp(2.0, 4.0, 0.25); got != 2.5 {
		t.Errorf("Lerp = %v", got)
	}
	if Sign(-3) != -1 || Sign(0.0) != 0 || Sign(float32(0.5)) != 1 {
		t.Error("Sign mismatch")
	}
}

func TestWrapDegrees(t *testing.T) {
	for in, want := range map[float64]float64{0: 0, 190: -170, -190: 170, 540: -180, -90: -90} {
		if got := WrapDegrees(in); got != want {
			t.Errorf("WrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}
