package game

import "fmt"

// Difficulty selects the motor control-loop tuning. Impossible
// additionally inverts operator control in every mode.
type Difficulty int

const (
	Hard Difficulty = iota
	Extreme
	Impossible
)

func (d Difficulty) String() string {
	switch d {
	case Hard:
		return "hard"
	case Extreme:
		return "extreme"
	case Impossible:
		return "impossible"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty converts a config or CLI string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "hard":
		return Hard, nil
	case "extreme":
		return Extreme, nil
	case "impossible":
		return Impossible, nil
	}
	return Hard, fmt.Errorf("game: unknown difficulty %q", s)
}

// Tuning is the gain triple and motor output cap bound to a difficulty.
type Tuning struct {
	P, I, D  int
	SpeedCap uint16
}

// Per-difficulty tuning table. These constants are shared with the
// cabinet's motor controller and must not drift.
var tunings = map[Difficulty]Tuning{
	Hard:       {P: 35, I: 20, D: 1, SpeedCap: 0x4FF},
	Extreme:    {P: 20, I: 10, D: 1, SpeedCap: 0x3FF},
	Impossible: {P: 40, I: 25, D: 1, SpeedCap: 0x4FF},
}

// TuningFor returns the gains and cap for d. Unknown values fall back
// to the Hard row.
func TuningFor(d Difficulty) Tuning {
	if t, ok := tunings[d]; ok {
		return t
	}
	return tunings[Hard]
}
