package config

import (
	_ "embed"
)

//go:embed defaults/gamenode.yaml
var defaultNodeYAML []byte

// DefaultNodeConfig returns the stock node configuration.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		Game: GameConfig{
			StartingLives: 3,
			BeamThreshold: 1000,
			Mode:          "slider",
			Difficulty:    "hard",
		},
		Storage: StorageConfig{
			DBPath: "~/.gamenode/sessions.db",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
