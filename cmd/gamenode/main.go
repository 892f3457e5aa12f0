// gamenode is the real-time control core of a physical arcade game
// node. It converts fixed-rate timer ticks and operator input into
// actuator commands, tracks score and lives, detects failures through
// an IR beam sensor and reports life losses to the node bus.
//
// Usage:
//
//	gamenode run       - Run the node against the simulated rig with a local console
//	gamenode serve     - Run the node and serve the operator console over SSH
//	gamenode scores    - Show recorded session results
//
// Global flags:
//
//	--config <path>  - Node config YAML (default: ~/.gamenode/config.yaml)
//	--db <path>      - Override the sessions database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamenode",
	Short: "Arcade game node controller",
	Long: `gamenode runs the control loop of one arcade cabinet node: motor,
servo and solenoid actuation from operator input, IR-beam failure
detection with per-obstruction debounce, and life-loss reporting to
the shared node bus.

Without the physical cabinet the node drives a simulated hardware rig,
observable and controllable through the operator console.

Examples:
  gamenode run
  gamenode run --config ./node.yaml
  gamenode serve
  gamenode scores`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to node config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to sessions database (overrides config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
