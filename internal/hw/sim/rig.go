// Package sim provides an in-memory hardware rig for running the node
// without the physical cabinet. Every device records the last command
// it received so the operator console and tests can observe actuation,
// and the sensors are settable from outside the control loop.
package sim

import (
	"sync"

	"github.com/haakonsen/gamenode/internal/hw"
)

// MotorCommand is the last drive command a simulated motor received.
type MotorCommand struct {
	Kind  MotorKind
	Value int          // slider target or joystick speed
	Dir   hw.Direction // set for KindDirection
}

// MotorKind tags which Motor method produced a command.
type MotorKind int

const (
	KindIdle MotorKind = iota
	KindSlider
	KindJoystick
	KindDirection
)

func (k MotorKind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindSlider:
		return "slider"
	case KindJoystick:
		return "joystick"
	case KindDirection:
		return "direction"
	}
	return "unknown"
}

// Motor records drive commands and the configured speed cap.
type Motor struct {
	mu   sync.Mutex
	last MotorCommand
	cap  uint16
}

func (m *Motor) RunSlider(target int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = MotorCommand{Kind: KindSlider, Value: target}
}

func (m *Motor) RunJoystick(speed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = MotorCommand{Kind: KindJoystick, Value: speed}
}

func (m *Motor) RunDirection(dir hw.Direction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = MotorCommand{Kind: KindDirection, Dir: dir}
}

func (m *Motor) SetSpeedCap(limit uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cap = limit
}

// Last returns the most recent drive command.
func (m *Motor) Last() MotorCommand {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// SpeedCap returns the configured output cap.
func (m *Motor) SpeedCap() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cap
}

// Servo records the last commanded angle.
type Servo struct {
	mu    sync.Mutex
	angle int
}

func (s *Servo) SetPosition(angle int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.angle = angle
}

// Angle returns the last commanded position.
func (s *Servo) Angle() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.angle
}

// Solenoid records its drive level.
type Solenoid struct {
	mu    sync.Mutex
	fired bool
}

func (s *Solenoid) Drive(fire bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fired = fire
}

// Fired reports whether the solenoid is currently driven.
func (s *Solenoid) Fired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// Gains is a recorded control-loop gain triple.
type Gains struct {
	P, I, D int
}

// Tuner records the last gain triple pushed to the motor controller.
type Tuner struct {
	mu    sync.Mutex
	gains Gains
}

func (t *Tuner) SetGains(p, i, d int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gains = Gains{P: p, I: i, D: d}
}

// Gains returns the last applied gain triple.
func (t *Tuner) Gains() Gains {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gains
}

// Beam is a settable IR beam sensor. Break and Restore flip between a
// fully obstructed and a fully clear level.
type Beam struct {
	mu          sync.Mutex
	level       uint16
	clearLevel  uint16
	brokenLevel uint16
}

// NewBeam returns a beam reading clear at the given level. A broken
// beam reads zero.
func NewBeam(clear uint16) *Beam {
	return &Beam{level: clear, clearLevel: clear, brokenLevel: 0}
}

func (b *Beam) Level() uint16 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

// SetLevel sets an exact sensor reading.
func (b *Beam) SetLevel(level uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = level
}

// Break obstructs the beam.
func (b *Beam) Break() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = b.brokenLevel
}

// Restore clears the obstruction.
func (b *Beam) Restore() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = b.clearLevel
}

// Broken reports whether the beam is at its broken level.
func (b *Beam) Broken() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level == b.brokenLevel
}

// Pad is a settable secondary input device.
type Pad struct {
	mu    sync.Mutex
	state hw.PadState
}

func (p *Pad) Read() hw.PadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetDir sets the sensed tilt direction.
func (p *Pad) SetDir(dir hw.Direction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Dir = dir
}

// SetButton sets the pad's own button level.
func (p *Pad) SetButton(pressed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Button = pressed
}

// Rig is a complete simulated device set.
type Rig struct {
	Motor    *Motor
	Servo    *Servo
	Solenoid *Solenoid
	Tuner    *Tuner
	Beam     *Beam
	Pad      *Pad
}

// NewRig returns a rig with the beam clear at the given level.
func NewRig(clearLevel uint16) *Rig {
	return &Rig{
		Motor:    &Motor{},
		Servo:    &Servo{},
		Solenoid: &Solenoid{},
		Tuner:    &Tuner{},
		Beam:     NewBeam(clearLevel),
		Pad:      &Pad{},
	}
}

// HW exposes the rig through the capability interfaces the core uses.
func (r *Rig) HW() hw.Rig {
	return hw.Rig{
		Motor:    r.Motor,
		Servo:    r.Servo,
		Solenoid: r.Solenoid,
		Tuner:    r.Tuner,
		Beam:     r.Beam,
		Pad:      r.Pad,
	}
}
