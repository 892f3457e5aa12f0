package console

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the operator console key bindings.
type KeyMap struct {
	ModeSlider     key.Binding
	ModeJoystick   key.Binding
	ModeTilt       key.Binding
	DiffHard       key.Binding
	DiffExtreme    key.Binding
	DiffImpossible key.Binding
	ResetScore     key.Binding
	ResetLives     key.Binding
	ToggleLoop     key.Binding
	ToggleBeam     key.Binding
	JoyLeft        key.Binding
	JoyRight       key.Binding
	SliderUp       key.Binding
	SliderDown     key.Binding
	ButtonRight    key.Binding
	PadLeft        key.Binding
	PadRight       key.Binding
	PadCenter      key.Binding
	PadButton      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ModeSlider, k.DiffHard, k.ToggleBeam, k.ToggleLoop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ModeSlider, k.ModeJoystick, k.ModeTilt},
		{k.DiffHard, k.DiffExtreme, k.DiffImpossible},
		{k.JoyLeft, k.JoyRight, k.SliderUp, k.SliderDown, k.ButtonRight},
		{k.PadLeft, k.PadRight, k.PadCenter, k.PadButton},
		{k.ToggleBeam, k.ToggleLoop, k.ResetScore, k.ResetLives, k.Quit},
	}
}

// DefaultKeyMap returns the default operator bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ModeSlider: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "slider mode"),
		),
		ModeJoystick: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "joystick mode"),
		),
		ModeTilt: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "tilt mode"),
		),
		DiffHard: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hard"),
		),
		DiffExtreme: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "extreme"),
		),
		DiffImpossible: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "impossible"),
		),
		ResetScore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset score"),
		),
		ResetLives: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "reset lives"),
		),
		ToggleLoop: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume loop"),
		),
		ToggleBeam: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "break/restore beam"),
		),
		JoyLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "joystick left"),
		),
		JoyRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "joystick right"),
		),
		SliderUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "right slider up"),
		),
		SliderDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "right slider down"),
		),
		ButtonRight: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "right button"),
		),
		PadLeft: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "pad tilt left"),
		),
		PadRight: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "pad tilt right"),
		),
		PadCenter: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "pad level"),
		),
		PadButton: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "pad button"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
