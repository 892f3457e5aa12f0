// Package game implements the per-tick control core of an arcade game
// node: mode-dependent input-to-actuator mapping, difficulty policy,
// edge-triggered beam failure detection and score/life bookkeeping.
//
// The controller owns all game state. Mutation happens only inside
// Tick (driven by the loop package) or through the explicit setters
// and resets, all of which apply as atomic, immediately-visible
// updates safe to call concurrently with a running tick.
package game

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/haakonsen/gamenode/internal/bus"
	"github.com/haakonsen/gamenode/internal/hw"
)

// Config is the static per-session configuration of a node.
type Config struct {
	StartingLives uint8
	BeamThreshold uint16
	Mode          Mode
	Difficulty    Difficulty
}

// DefaultConfig returns the stock cabinet settings.
func DefaultConfig() Config {
	return Config{
		StartingLives: 3,
		BeamThreshold: 1000,
		Mode:          ModeSliderPosition,
		Difficulty:    Hard,
	}
}

// Loop is the fixed-rate timer delivery the controller arms. Enable
// starts tick delivery, Disable stops it before the next scheduled
// tick.
type Loop interface {
	Enable()
	Disable()
}

// Deps are the external collaborators a controller drives.
type Deps struct {
	Rig      hw.Rig
	Scaler   hw.Scaler
	Notifier bus.Notifier
	Loop     Loop
	Logger   *log.Logger
}

// Controller runs one control-loop iteration per timer tick and owns
// the node's game state.
type Controller struct {
	rig      hw.Rig
	scaler   hw.Scaler
	notifier bus.Notifier
	loop     Loop
	log      *log.Logger

	startingLives uint32

	score atomic.Uint32
	lives atomic.Uint32

	mode       atomic.Int32
	difficulty atomic.Int32

	input atomic.Pointer[InputSnapshot]

	// beam is touched only from the tick goroutine; latched mirrors
	// its state for concurrent readers.
	beam    beamMonitor
	latched atomic.Bool
}

// New wires a controller. Call Init before enabling the loop.
func New(cfg Config, deps Deps) *Controller {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	c := &Controller{
		rig:           deps.Rig,
		scaler:        deps.Scaler,
		notifier:      deps.Notifier,
		loop:          deps.Loop,
		log:           deps.Logger,
		startingLives: uint32(cfg.StartingLives),
		beam:          beamMonitor{threshold: cfg.BeamThreshold},
	}
	c.mode.Store(int32(cfg.Mode))
	c.difficulty.Store(int32(cfg.Difficulty))
	c.input.Store(&InputSnapshot{})
	c.lives.Store(c.startingLives)
	return c
}

// Init resets score and lives, brings up every capability and applies
// the configured difficulty's gains and cap to the actuator. The loop
// stays armed but stopped; call EnableLoop to start tick delivery.
func (c *Controller) Init() error {
	c.score.Store(0)
	c.lives.Store(c.startingLives)
	c.beam.reset()
	c.latched.Store(false)
	c.input.Store(&InputSnapshot{})

	if err := c.rig.Init(); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	c.applyTuning(c.Difficulty())
	return nil
}

// EnableLoop starts timer tick delivery.
func (c *Controller) EnableLoop() {
	c.loop.Enable()
}

// DisableLoop stops timer tick delivery. Safe to call at any time; a
// tick already in progress completes, and no further ticks are
// delivered afterwards. Actuators are left as the last tick set them.
func (c *Controller) DisableLoop() {
	c.loop.Disable()
}

// SetInput scales a raw 6-byte operator frame and atomically replaces
// the stored snapshot. Last write wins; safe to call concurrently with
// ticks.
func (c *Controller) SetInput(raw []byte) error {
	if len(raw) != RawFrameLen {
		return fmt.Errorf("game: raw input frame is %d bytes, want %d", len(raw), RawFrameLen)
	}
	c.input.Store(&InputSnapshot{
		JoystickX:   c.scaler.JoystickX(raw[0]),
		JoystickY:   c.scaler.JoystickY(raw[1]),
		SliderLeft:  c.scaler.SliderLeft(raw[2]),
		SliderRight: c.scaler.SliderRight(raw[3]),
		ButtonLeft:  raw[4] != 0,
		ButtonRight: raw[5] != 0,
	})
	return nil
}

// Input returns the current snapshot.
func (c *Controller) Input() InputSnapshot {
	return *c.input.Load()
}

// SetMode stores the control mode. Takes effect on the next tick.
func (c *Controller) SetMode(m Mode) {
	c.mode.Store(int32(m))
}

// Mode returns the active control mode.
func (c *Controller) Mode() Mode {
	return Mode(c.mode.Load())
}

// SetDifficulty stores the difficulty and immediately pushes its gain
// triple and output cap to the actuator, not deferred to the next
// tick.
func (c *Controller) SetDifficulty(d Difficulty) {
	c.difficulty.Store(int32(d))
	c.applyTuning(d)
}

// Difficulty returns the active difficulty.
func (c *Controller) Difficulty() Difficulty {
	return Difficulty(c.difficulty.Load())
}

func (c *Controller) applyTuning(d Difficulty) {
	t := TuningFor(d)
	c.rig.Tuner.SetGains(t.P, t.I, t.D)
	c.rig.Motor.SetSpeedCap(t.SpeedCap)
}

// Score returns the current score.
func (c *Controller) Score() uint {
	return uint(c.score.Load())
}

// Lives returns the remaining life count.
func (c *Controller) Lives() uint {
	return uint(c.lives.Load())
}

// FailureLatched reports whether a failure has already been counted
// for the current below-threshold interval.
func (c *Controller) FailureLatched() bool {
	return c.latched.Load()
}

// ResetScore sets the score back to zero.
func (c *Controller) ResetScore() {
	c.score.Store(0)
}

// ResetLives restores the configured starting life count.
func (c *Controller) ResetLives() {
	c.lives.Store(c.startingLives)
}

// Tick runs one control-loop iteration: failure detection, mode
// dispatch, score increment, then notification. Only the loop driver
// may invoke it; ticks never overlap.
func (c *Controller) Tick() {
	failed := c.beam.observe(c.rig.Beam.Level())
	c.latched.Store(c.beam.latched)
	var livesLeft uint32
	if failed {
		livesLeft = c.loseLife()
	}

	in := *c.input.Load()
	mode := c.Mode()
	diff := c.Difficulty()

	var pad hw.PadState
	if mode == ModeTiltSpeed {
		pad = c.rig.Pad.Read()
	}

	c.apply(commandsFor(mode, in, diff, pad))

	// The tail always runs, whatever mode matched above.
	c.score.Add(1)

	if failed {
		if err := c.notifier.Send(bus.LifeLost(uint8(livesLeft))); err != nil {
			c.log.Warn("life-loss notification failed", "lives", livesLeft, "err", err)
		}
	}
}

// loseLife decrements the life counter once, stopping at zero.
func (c *Controller) loseLife() uint32 {
	for {
		cur := c.lives.Load()
		if cur == 0 {
			return 0
		}
		if c.lives.CompareAndSwap(cur, cur-1) {
			return cur - 1
		}
	}
}

// apply pushes one tick's commands to the actuators. MotorIdle skips
// actuation entirely.
func (c *Controller) apply(cmd Commands) {
	switch cmd.Motor {
	case MotorSlider:
		c.rig.Motor.RunSlider(cmd.Value)
	case MotorJoystick:
		c.rig.Motor.RunJoystick(cmd.Value)
	case MotorDirection:
		c.rig.Motor.RunDirection(cmd.Dir)
	default:
		return
	}
	c.rig.Servo.SetPosition(cmd.Servo)
	c.rig.Solenoid.Drive(cmd.Solenoid)
}
