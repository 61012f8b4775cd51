package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// GameMode selects which rule set a session runs
type GameMode int

const (
	ModeAsteroids GameMode = 0 // drifting rocks that split when shot
	ModeFormation GameMode = 1 // invader grid with diving attackers
)

// ParseMode maps a mode name to a GameMode, defaulting to asteroids
func ParseMode(s string) GameMode {
	if s == "formation" {
		return ModeFormation
	}
	return ModeAsteroids
}

func (m GameMode) String() string {
	if m == ModeFormation {
		return "formation"
	}
	return "asteroids"
}

// Config holds the per-game tuning values that differ between modes or
// that operators may want to override. Finer-grained physics constants
// live as package constants next to the entity they tune.
type Config struct {
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`
	Lives       int     `yaml:"lives"`

	// Post-batch safety caps (see collision.go)
	MaxObstacles int `yaml:"max_obstacles"`
	MaxParticles int `yaml:"max_particles"`

	// Wave growth: asteroids mode
	BaseAsteroids    int `yaml:"base_asteroids"`
	AsteroidsPerWave int `yaml:"asteroids_per_wave"`

	// Wave growth: formation mode
	BaseColumns int `yaml:"base_columns"`
	MaxColumns  int `yaml:"max_columns"`
}

// DefaultConfig returns the tuning defaults. Both modes currently share
// one set; the mode parameter keeps the call sites stable if they split.
func DefaultConfig(mode GameMode) Config {
	return Config{
		WorldWidth:       800,
		WorldHeight:      600,
		Lives:            3,
		MaxObstacles:     50,
		MaxParticles:     200,
		BaseAsteroids:    4,
		AsteroidsPerWave: 1,
		BaseColumns:      6,
		MaxColumns:       10,
	}
}

// LoadConfig layers YAML overrides from path on top of the defaults
// for the given mode
func LoadConfig(path string, mode GameMode) (Config, error) {
	cfg := DefaultConfig(mode)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return mergeTuning(cfg, data)
}

// mergeTuning unmarshals raw YAML overrides over an existing config
func mergeTuning(cfg Config, tuning []byte) (Config, error) {
	if err := yaml.Unmarshal(tuning, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
