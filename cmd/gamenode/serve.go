package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/haakonsen/gamenode/internal/config"
	"github.com/haakonsen/gamenode/internal/platform/console"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the game node and serve the operator console over SSH",
	Long: `Run the control loop and expose the operator console to remote SSH
sessions. Every session attaches to the same node, so two operators
see (and drive) the same cabinet.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gamenode/host_key

Examples:
  gamenode serve                     # Listen on the configured address
  gamenode serve --ssh :2222         # Listen on port 2222
  gamenode serve --host-key ./key    # Use a specific host key

Operators connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	sshCfg := console.SSHConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKeyPath,
		IdleTimeout: time.Duration(cfg.SSH.IdleTimeoutMinutes) * time.Minute,
	}
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	n, err := buildNode(cfg)
	if err != nil {
		return err
	}
	defer n.finish()

	server, err := console.NewSSHServer(sshCfg, n.ctrl, n.rig)
	if err != nil {
		return err
	}

	n.ctrl.EnableLoop()
	return server.ListenAndServe()
}
