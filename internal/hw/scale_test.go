package hw

import "testing"

func TestPercentScalerJoystick(t *testing.T) {
	s := PercentScaler{}

	tests := []struct {
		raw  byte
		want int
	}{
		{0, -100},
		{128, 0},
		{255, 100},
	}

	for _, tt := range tests {
		if got := s.JoystickX(tt.raw); got != tt.want {
			t.Errorf("JoystickX(%d) = %d, want %d", tt.raw, got, tt.want)
		}
		if got := s.JoystickY(tt.raw); got != tt.want {
			t.Errorf("JoystickY(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestPercentScalerSlider(t *testing.T) {
	s := PercentScaler{}

	tests := []struct {
		raw  byte
		want int
	}{
		{0, 0},
		{51, 20},
		{204, 80},
		{255, 100},
	}

	for _, tt := range tests {
		if got := s.SliderRight(tt.raw); got != tt.want {
			t.Errorf("SliderRight(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestPercentScalerBounds(t *testing.T) {
	s := PercentScaler{}

	for raw := 0; raw <= 255; raw++ {
		j := s.JoystickX(byte(raw))
		if j < -JoystickMax || j > JoystickMax {
			t.Fatalf("JoystickX(%d) = %d out of range", raw, j)
		}
		sl := s.SliderLeft(byte(raw))
		if sl < 0 || sl > SliderMax {
			t.Fatalf("SliderLeft(%d) = %d out of range", raw, sl)
		}
	}
}
