package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haakonsen/gamenode/internal/game"
	"github.com/haakonsen/gamenode/internal/hw"
	"github.com/haakonsen/gamenode/internal/hw/sim"
)

// How far one keypress moves a raw analog channel.
const rawStep = 16

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Model is the Bubble Tea model for the operator console. It drives
// one shared controller and simulated rig; multiple consoles (local
// and SSH) may observe the same node.
type Model struct {
	ctrl *game.Controller
	rig  *sim.Rig

	keys KeyMap
	help help.Model

	raw      [game.RawFrameLen]byte
	loopOn   bool
	width    int
	height   int
	quitting bool
}

// NewModel creates a console over the given controller and rig.
// loopRunning tells the console whether tick delivery is already
// enabled so its pause toggle starts in the right state.
func NewModel(ctrl *game.Controller, rig *sim.Rig, loopRunning bool) Model {
	return Model{
		ctrl:   ctrl,
		rig:    rig,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		loopOn: loopRunning,
		// Analog channels start centered, buttons released.
		raw: [game.RawFrameLen]byte{128, 128, 128, 128, 0, 0},
	}
}

// Init pushes the initial input frame and starts the refresh loop.
func (m Model) Init() tea.Cmd {
	m.ctrl.SetInput(m.raw[:])
	return refreshCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case RefreshMsg:
		return m, refreshCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.ModeSlider):
		m.ctrl.SetMode(game.ModeSliderPosition)
	case key.Matches(msg, m.keys.ModeJoystick):
		m.ctrl.SetMode(game.ModeJoystickSpeed)
	case key.Matches(msg, m.keys.ModeTilt):
		m.ctrl.SetMode(game.ModeTiltSpeed)

	case key.Matches(msg, m.keys.DiffHard):
		m.ctrl.SetDifficulty(game.Hard)
	case key.Matches(msg, m.keys.DiffExtreme):
		m.ctrl.SetDifficulty(game.Extreme)
	case key.Matches(msg, m.keys.DiffImpossible):
		m.ctrl.SetDifficulty(game.Impossible)

	case key.Matches(msg, m.keys.ResetScore):
		m.ctrl.ResetScore()
	case key.Matches(msg, m.keys.ResetLives):
		m.ctrl.ResetLives()

	case key.Matches(msg, m.keys.ToggleLoop):
		if m.loopOn {
			m.ctrl.DisableLoop()
		} else {
			m.ctrl.EnableLoop()
		}
		m.loopOn = !m.loopOn

	case key.Matches(msg, m.keys.ToggleBeam):
		if m.rig.Beam.Broken() {
			m.rig.Beam.Restore()
		} else {
			m.rig.Beam.Break()
		}

	case key.Matches(msg, m.keys.JoyLeft):
		m.raw[0] = stepDown(m.raw[0])
		m.pushInput()
	case key.Matches(msg, m.keys.JoyRight):
		m.raw[0] = stepUp(m.raw[0])
		m.pushInput()
	case key.Matches(msg, m.keys.SliderUp):
		m.raw[3] = stepUp(m.raw[3])
		m.pushInput()
	case key.Matches(msg, m.keys.SliderDown):
		m.raw[3] = stepDown(m.raw[3])
		m.pushInput()
	case key.Matches(msg, m.keys.ButtonRight):
		if m.raw[5] == 0 {
			m.raw[5] = 1
		} else {
			m.raw[5] = 0
		}
		m.pushInput()

	case key.Matches(msg, m.keys.PadLeft):
		m.rig.Pad.SetDir(hw.DirLeft)
	case key.Matches(msg, m.keys.PadRight):
		m.rig.Pad.SetDir(hw.DirRight)
	case key.Matches(msg, m.keys.PadCenter):
		m.rig.Pad.SetDir(hw.DirNone)
	case key.Matches(msg, m.keys.PadButton):
		m.rig.Pad.SetButton(!m.rig.Pad.Read().Button)
	}

	return m, nil
}

func (m *Model) pushInput() {
	m.ctrl.SetInput(m.raw[:])
}

func stepUp(v byte) byte {
	if v > 255-rawStep {
		return 255
	}
	return v + rawStep
}

func stepDown(v byte) byte {
	if v < rawStep {
		return 0
	}
	return v - rawStep
}

// View renders the console.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("gamenode operator console"))
	b.WriteString("\n\n")

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(m.statusPanel()),
		panelStyle.Render(m.inputPanel()),
		panelStyle.Render(m.actuatorPanel()),
	)
	b.WriteString(panels)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) statusPanel() string {
	loopState := alertStyle.Render("stopped")
	if m.loopOn {
		loopState = okStyle.Render("running")
	}

	beam := m.rig.Beam.Level()
	beamState := okStyle.Render(fmt.Sprintf("%d", beam))
	if m.rig.Beam.Broken() {
		suffix := "(broken)"
		if m.ctrl.FailureLatched() {
			suffix = "(broken, counted)"
		}
		beamState = alertStyle.Render(fmt.Sprintf("%d %s", beam, suffix))
	}

	t := game.TuningFor(m.ctrl.Difficulty())

	lines := []string{
		labelStyle.Render("loop:       ") + loopState,
		labelStyle.Render("score:      ") + fmt.Sprintf("%d", m.ctrl.Score()),
		labelStyle.Render("lives:      ") + strings.Repeat("♥ ", int(m.ctrl.Lives())),
		labelStyle.Render("mode:       ") + m.ctrl.Mode().String(),
		labelStyle.Render("difficulty: ") + m.ctrl.Difficulty().String(),
		labelStyle.Render("gains:      ") + fmt.Sprintf("P=%d I=%d D=%d cap=0x%X", t.P, t.I, t.D, t.SpeedCap),
		labelStyle.Render("beam:       ") + beamState,
	}
	return strings.Join(lines, "\n")
}

func (m Model) inputPanel() string {
	in := m.ctrl.Input()
	pad := m.rig.Pad.Read()

	lines := []string{
		labelStyle.Render("joystick:  ") + fmt.Sprintf("x=%d y=%d", in.JoystickX, in.JoystickY),
		labelStyle.Render("sliders:   ") + fmt.Sprintf("L=%d R=%d", in.SliderLeft, in.SliderRight),
		labelStyle.Render("buttons:   ") + fmt.Sprintf("L=%v R=%v", in.ButtonLeft, in.ButtonRight),
		labelStyle.Render("pad dir:   ") + pad.Dir.String(),
		labelStyle.Render("pad btn:   ") + fmt.Sprintf("%v", pad.Button),
	}
	return strings.Join(lines, "\n")
}

func (m Model) actuatorPanel() string {
	motor := m.rig.Motor.Last()

	var motorLine string
	switch motor.Kind {
	case sim.KindDirection:
		motorLine = fmt.Sprintf("%s %s", motor.Kind, motor.Dir)
	case sim.KindIdle:
		motorLine = "idle"
	default:
		motorLine = fmt.Sprintf("%s %d", motor.Kind, motor.Value)
	}

	solenoid := "released"
	if m.rig.Solenoid.Fired() {
		solenoid = alertStyle.Render("fired")
	}

	g := m.rig.Tuner.Gains()

	lines := []string{
		labelStyle.Render("motor:    ") + motorLine,
		labelStyle.Render("cap:      ") + fmt.Sprintf("0x%X", m.rig.Motor.SpeedCap()),
		labelStyle.Render("servo:    ") + fmt.Sprintf("%d°", m.rig.Servo.Angle()),
		labelStyle.Render("solenoid: ") + solenoid,
		labelStyle.Render("tuner:    ") + fmt.Sprintf("P=%d I=%d D=%d", g.P, g.I, g.D),
	}
	return strings.Join(lines, "\n")
}
