package game

// RawFrameLen is the wire size of one raw operator input frame:
// joystick x, joystick y, left slider, right slider, left button,
// right button, one byte each.
const RawFrameLen = 6

// InputSnapshot is the most recent scaled operator input. The
// controller stores exactly one snapshot, replaced wholesale on every
// received frame, so a tick never sees half of an update.
type InputSnapshot struct {
	JoystickX   int
	JoystickY   int
	SliderLeft  int
	SliderRight int
	ButtonLeft  bool
	ButtonRight bool
}
