package game

import (
	"fmt"

	"github.com/haakonsen/gamenode/internal/hw"
)

// Mode selects which input channels drive the actuators on a tick.
// Set externally; the core never transitions between modes on its own.
type Mode int

const (
	// ModeSliderPosition positions the motor from the right slider.
	ModeSliderPosition Mode = iota

	// ModeJoystickSpeed drives the motor at a speed from the joystick
	// x axis.
	ModeJoystickSpeed

	// ModeTiltSpeed drives the motor from the tilt pad's sensed
	// direction.
	ModeTiltSpeed
)

func (m Mode) String() string {
	switch m {
	case ModeSliderPosition:
		return "slider"
	case ModeJoystickSpeed:
		return "joystick"
	case ModeTiltSpeed:
		return "tilt"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a config or CLI string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "slider":
		return ModeSliderPosition, nil
	case "joystick":
		return ModeJoystickSpeed, nil
	case "tilt":
		return ModeTiltSpeed, nil
	}
	return ModeSliderPosition, fmt.Errorf("game: unknown mode %q", s)
}

// MotorAction tags which Motor drive method a tick selected.
type MotorAction int

const (
	MotorIdle MotorAction = iota
	MotorSlider
	MotorJoystick
	MotorDirection
)

// Commands is one tick's worth of actuator output. A MotorIdle action
// means the tick performs no actuation at all.
type Commands struct {
	Motor    MotorAction
	Value    int          // slider target or joystick speed
	Dir      hw.Direction // set for MotorDirection
	Servo    int
	Solenoid bool
}

// mapSliderPosition targets the motor at the right slider. Impossible
// difficulty mirrors the target across the slider range.
func mapSliderPosition(in InputSnapshot, d Difficulty) Commands {
	target := in.SliderRight
	if d == Impossible {
		target = hw.SliderMax - in.SliderRight
	}
	return Commands{
		Motor:    MotorSlider,
		Value:    target,
		Servo:    in.JoystickX,
		Solenoid: in.ButtonRight,
	}
}

// mapJoystickSpeed drives the motor at the joystick x speed, negated
// on Impossible. The servo rides the right slider recentered so that
// mid-slider is neutral.
func mapJoystickSpeed(in InputSnapshot, d Difficulty) Commands {
	speed := in.JoystickX
	if d == Impossible {
		speed = -speed
	}
	return Commands{
		Motor:    MotorJoystick,
		Value:    speed,
		Servo:    2 * (in.SliderRight - 50),
		Solenoid: in.ButtonRight,
	}
}

// mapTiltSpeed drives the motor from the pad direction. Impossible
// swaps left and right; every other direction passes through. The
// solenoid follows the pad's own button, not the panel snapshot.
func mapTiltSpeed(in InputSnapshot, d Difficulty, pad hw.PadState) Commands {
	dir := pad.Dir
	if d == Impossible {
		switch dir {
		case hw.DirLeft:
			dir = hw.DirRight
		case hw.DirRight:
			dir = hw.DirLeft
		}
	}
	return Commands{
		Motor:    MotorDirection,
		Dir:      dir,
		Servo:    in.JoystickX,
		Solenoid: pad.Button,
	}
}

// commandsFor dispatches over the active mode. Unrecognized modes
// produce no actuation; the rest of the tick still runs.
func commandsFor(mode Mode, in InputSnapshot, d Difficulty, pad hw.PadState) Commands {
	switch mode {
	case ModeSliderPosition:
		return mapSliderPosition(in, d)
	case ModeJoystickSpeed:
		return mapJoystickSpeed(in, d)
	case ModeTiltSpeed:
		return mapTiltSpeed(in, d, pad)
	}
	return Commands{}
}
