package hw

// Scaled input ranges. Raw frame bytes are mapped into these before
// the core ever sees them.
const (
	JoystickMax = 100 // joysticks scale to -JoystickMax..JoystickMax
	SliderMax   = 100 // sliders scale to 0..SliderMax
)

// Scaler converts raw input-frame bytes into usable ranges. Each field
// of the frame has its own conversion so boards with asymmetric
// potentiometers can calibrate per channel.
type Scaler interface {
	JoystickX(raw byte) int
	JoystickY(raw byte) int
	SliderLeft(raw byte) int
	SliderRight(raw byte) int
}

// PercentScaler maps raw 0..255 bytes onto percent ranges: joysticks
// to -100..100 centered on the byte midpoint, sliders to 0..100.
type PercentScaler struct{}

func (PercentScaler) JoystickX(raw byte) int   { return scaleJoystick(raw) }
func (PercentScaler) JoystickY(raw byte) int   { return scaleJoystick(raw) }
func (PercentScaler) SliderLeft(raw byte) int  { return scaleSlider(raw) }
func (PercentScaler) SliderRight(raw byte) int { return scaleSlider(raw) }

func scaleJoystick(raw byte) int {
	return int(raw)*2*JoystickMax/255 - JoystickMax
}

func scaleSlider(raw byte) int {
	return int(raw) * SliderMax / 255
}
