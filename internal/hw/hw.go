// Package hw defines the capability interfaces the game node core
// depends on. The real cabinet peripherals (motor box, servo bridge,
// solenoid driver, IR beam sensor, tilt pad) live behind these
// interfaces; the sim subpackage provides a desktop implementation.
package hw

import "fmt"

// Direction is a coarse movement direction reported by the tilt pad.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirForward
	DirBackward
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Motor drives the main game motor. Exactly one Run method is called
// per tick, selected by the active control mode.
type Motor interface {
	// RunSlider moves the motor toward a target position in 0..SliderMax.
	RunSlider(target int)

	// RunJoystick drives the motor at a signed speed in
	// -JoystickMax..JoystickMax.
	RunJoystick(speed int)

	// RunDirection drives the motor from a coarse pad direction.
	RunDirection(dir Direction)

	// SetSpeedCap limits the magnitude of the motor output.
	SetSpeedCap(limit uint16)
}

// Servo positions the game servo arm.
type Servo interface {
	SetPosition(angle int)
}

// Solenoid fires while driven true and releases when driven false.
type Solenoid interface {
	Drive(fire bool)
}

// Tuner reconfigures the motor control-loop gains.
type Tuner interface {
	SetGains(p, i, d int)
}

// BeamSensor reads the current IR beam level. Higher means the beam
// reaches the receiver; an obstruction drops the level.
type BeamSensor interface {
	Level() uint16
}

// PadState is one reading of the secondary input device: its sensed
// direction and its own button, independent of the cabinet panel.
type PadState struct {
	Dir    Direction
	Button bool
}

// Pad is the secondary tilt-based input device.
type Pad interface {
	Read() PadState
}

// Initializer is implemented by capabilities that need bring-up before
// the control loop starts.
type Initializer interface {
	Init() error
}

// Rig groups the capabilities one game node drives.
type Rig struct {
	Motor    Motor
	Servo    Servo
	Solenoid Solenoid
	Tuner    Tuner
	Beam     BeamSensor
	Pad      Pad
}

// Init brings up every peripheral, failing on the first one that is
// missing or unavailable.
func (r *Rig) Init() error {
	devices := []struct {
		name string
		dev  any
	}{
		{"motor", r.Motor},
		{"servo", r.Servo},
		{"solenoid", r.Solenoid},
		{"tuner", r.Tuner},
		{"beam sensor", r.Beam},
		{"pad", r.Pad},
	}

	for _, d := range devices {
		if d.dev == nil {
			return fmt.Errorf("hw: missing %s capability", d.name)
		}
		if init, ok := d.dev.(Initializer); ok {
			if err := init.Init(); err != nil {
				return fmt.Errorf("hw: %s unavailable: %w", d.name, err)
			}
		}
	}

	return nil
}
