package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/haakonsen/gamenode/internal/config"
	"github.com/haakonsen/gamenode/internal/platform/console"
)

// Minimum terminal size for the three console panels.
const (
	minConsoleWidth  = 90
	minConsoleHeight = 14
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the game node with a local operator console",
	Long: `Run the control loop against the simulated hardware rig and open
the operator console in this terminal.

Console controls:
  1/2/3      - Control mode: slider, joystick, tilt
  h/x/i      - Difficulty: hard, extreme, impossible
  arrows     - Drive the joystick x axis and the right slider
  space      - Toggle the right panel button
  j/k/n/m    - Tilt pad: left, right, level, button
  b          - Break/restore the IR beam
  p          - Pause/resume the control loop
  r/l        - Reset score / reset lives
  q          - Quit

Examples:
  gamenode run
  gamenode run --config ./node.yaml --db ./sessions.db`,
	RunE: runRun,
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	n, err := buildNode(cfg)
	if err != nil {
		return err
	}
	defer n.finish()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < minConsoleWidth || h < minConsoleHeight {
			n.logger.Warn("terminal smaller than recommended",
				"width", w, "height", h,
				"want_width", minConsoleWidth, "want_height", minConsoleHeight)
		}
	}

	n.ctrl.EnableLoop()

	model := console.NewModel(n.ctrl, n.rig, true)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	fmt.Printf("Session over. Score: %d, lives left: %d\n", n.ctrl.Score(), n.ctrl.Lives())
	return nil
}
