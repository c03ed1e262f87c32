// Package config loads the TOML configuration file and resolves defaults
// for every tunable in the confidence/intervention pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/skmehra/nudgelab/internal/behavior"
	"github.com/skmehra/nudgelab/internal/confidence"
	"github.com/skmehra/nudgelab/internal/guardian"
	"github.com/skmehra/nudgelab/internal/ledger"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	Strategy         confidence.Strategy
	Weights          confidence.Weights
	MinProcessing    float64
	Tau              float64
	MinHistory       int
	Epsilon          float64
	NudgeThreshold   float64
	TrapGate         float64
	GateOnTrap       bool
	PauseSeconds     float64
	FeedAllArms      bool
	DifficultySource ledger.Source
}

// Default returns the stock configuration, matching the original study's
// parameters.
func Default() Config {
	model := confidence.DefaultConfig()
	det := guardian.DefaultConfig()
	return Config{
		Strategy:         confidence.StrategySigmoid,
		Weights:          model.Weights,
		MinProcessing:    model.MinProcessing,
		Tau:              model.Tau,
		MinHistory:       behavior.DefaultMinHistory,
		Epsilon:          behavior.DefaultEpsilon,
		NudgeThreshold:   det.NudgeThreshold,
		TrapGate:         det.TrapGate,
		GateOnTrap:       det.GateOnTrap,
		PauseSeconds:     det.Pause.Seconds(),
		FeedAllArms:      false,
		DifficultySource: ledger.SourceAuthored,
	}
}

// Pause returns the intervention pause as a duration.
func (c Config) Pause() time.Duration {
	return time.Duration(c.PauseSeconds * float64(time.Second))
}

// ModelConfig converts to the confidence package's configuration.
func (c Config) ModelConfig() confidence.Config {
	return confidence.Config{
		Weights:       c.Weights,
		MinProcessing: c.MinProcessing,
		Tau:           c.Tau,
	}
}

// DetectorConfig converts to the guardian package's configuration.
func (c Config) DetectorConfig() guardian.Config {
	return guardian.Config{
		NudgeThreshold: c.NudgeThreshold,
		TrapGate:       c.TrapGate,
		GateOnTrap:     c.GateOnTrap,
		Pause:          c.Pause(),
	}
}

// Validate checks ranges that would silently break scoring.
func (c Config) Validate() error {
	switch c.Strategy {
	case confidence.StrategySigmoid, confidence.StrategyDecay, confidence.StrategyDecayExp:
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if c.NudgeThreshold <= 0 || c.NudgeThreshold >= 1 {
		return fmt.Errorf("nudge_threshold %f out of (0,1)", c.NudgeThreshold)
	}
	if c.TrapGate <= 0 || c.TrapGate >= 1 {
		return fmt.Errorf("trap_gate %f out of (0,1)", c.TrapGate)
	}
	if c.MinHistory < 1 {
		return fmt.Errorf("min_history %d must be at least 1", c.MinHistory)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon %f must be positive", c.Epsilon)
	}
	if c.PauseSeconds < 0 {
		return fmt.Errorf("pause_seconds %f must not be negative", c.PauseSeconds)
	}
	switch c.DifficultySource {
	case ledger.SourceAuthored, ledger.SourceLearned:
	default:
		return fmt.Errorf("unknown difficulty_source %q", c.DifficultySource)
	}
	return nil
}

// FileConfig is the TOML file shape. Every field is optional; nil keeps the
// default.
type FileConfig struct {
	Strategy         *string  `toml:"strategy"`
	W1               *float64 `toml:"w1"`
	W2               *float64 `toml:"w2"`
	W3               *float64 `toml:"w3"`
	MinProcessing    *float64 `toml:"min_processing_time"`
	Tau              *float64 `toml:"tau"`
	MinHistory       *int     `toml:"min_history"`
	Epsilon          *float64 `toml:"epsilon"`
	NudgeThreshold   *float64 `toml:"nudge_threshold"`
	TrapGate         *float64 `toml:"trap_gate"`
	GateOnTrap       *bool    `toml:"gate_on_trap"`
	PauseSeconds     *float64 `toml:"pause_seconds"`
	FeedAllArms      *bool    `toml:"feed_all_arms"`
	DifficultySource *string  `toml:"difficulty_source"`
}

// LoadFile reads a TOML config from the given path. A missing file is not
// an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return fc, nil
}

// Apply overlays the file's set values onto cfg.
func (fc FileConfig) Apply(cfg *Config) {
	if fc.Strategy != nil {
		cfg.Strategy = confidence.Strategy(*fc.Strategy)
	}
	if fc.W1 != nil {
		cfg.Weights.Speed = *fc.W1
	}
	if fc.W2 != nil {
		cfg.Weights.Velocity = *fc.W2
	}
	if fc.W3 != nil {
		cfg.Weights.Revision = *fc.W3
	}
	if fc.MinProcessing != nil {
		cfg.MinProcessing = *fc.MinProcessing
	}
	if fc.Tau != nil {
		cfg.Tau = *fc.Tau
	}
	if fc.MinHistory != nil {
		cfg.MinHistory = *fc.MinHistory
	}
	if fc.Epsilon != nil {
		cfg.Epsilon = *fc.Epsilon
	}
	if fc.NudgeThreshold != nil {
		cfg.NudgeThreshold = *fc.NudgeThreshold
	}
	if fc.TrapGate != nil {
		cfg.TrapGate = *fc.TrapGate
	}
	if fc.GateOnTrap != nil {
		cfg.GateOnTrap = *fc.GateOnTrap
	}
	if fc.PauseSeconds != nil {
		cfg.PauseSeconds = *fc.PauseSeconds
	}
	if fc.FeedAllArms != nil {
		cfg.FeedAllArms = *fc.FeedAllArms
	}
	if fc.DifficultySource != nil {
		cfg.DifficultySource = ledger.Source(*fc.DifficultySource)
	}
}

// Load resolves the effective configuration: defaults overlaid with the
// config file at path (or the default path when empty).
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg := Default()
	fc, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	fc.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "nudgelab", "config.toml")
}
