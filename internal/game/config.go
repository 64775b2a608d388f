package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/minesweep/internal/world"
)

// defaultSeed is the tick counter's starting value.
const defaultSeed uint32 = 0x12345678

// Config holds game configuration options.
type Config struct {
	// Board geometry. Fixed for players; tests shrink it.
	Width     int
	Height    int
	MineCount int

	// Seed is the initial tick counter. Mines are placed from the tick value
	// at the first reveal, so the same seed and the same key presses give the
	// same field.
	Seed uint32

	LogFile   string
	LogLevel  string
	Telemetry bool
}

// DefaultConfig returns the standard 16×16 board with 50 mines.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		MineCount: world.DefaultMineCount,
		Seed:      defaultSeed,
		LogLevel:  "info",
	}
}

// LoadConfig builds a Config from the environment:
//   - MINESWEEP_SEED: initial tick counter (decimal or 0x-prefixed hex)
//   - MINESWEEP_LOG_FILE: log file path; empty discards logs
//   - MINESWEEP_LOG_LEVEL: logrus level name
//   - HONEYCOMB_MINESWEEP_API_KEY: enables tracing when set
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MINESWEEP_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 0, 32)
		if err != nil {
			return cfg, fmt.Errorf("invalid MINESWEEP_SEED %q: %w", v, err)
		}
		cfg.Seed = uint32(seed)
	}
	cfg.LogFile = os.Getenv("MINESWEEP_LOG_FILE")
	if v := os.Getenv("MINESWEEP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.Telemetry = os.Getenv("HONEYCOMB_MINESWEEP_API_KEY") != ""

	return cfg, nil
}
