// Package config provides YAML-based configuration loading for the
// game node.
package config

// NodeConfig is the full configuration of one game node.
type NodeConfig struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GameConfig holds the control-core settings. The loop tick rate is a
// compile-time constant and deliberately absent here.
type GameConfig struct {
	StartingLives uint8  `yaml:"starting_lives"`
	BeamThreshold uint16 `yaml:"beam_threshold"`
	Mode          string `yaml:"mode"`       // slider, joystick, tilt
	Difficulty    string `yaml:"difficulty"` // hard, extreme, impossible
}

// StorageConfig holds session persistence settings.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig holds the remote operator console settings.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
