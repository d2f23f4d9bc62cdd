// Package config holds the engine tuning knobs.
//
// A Config is built once at startup and injected into the components that
// need it. It is never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the adaptive-engine parameters.
type Config struct {
	// InitialSkillRating is the rating assigned to a concept the learner
	// has never attempted.
	InitialSkillRating float64

	// InitialUncertainty is the starting uncertainty for a new concept.
	InitialUncertainty float64

	// BaseKFactor controls how aggressively ratings move per attempt.
	BaseKFactor float64

	// UncertaintyDecay is the per-attempt multiplier applied to uncertainty.
	UncertaintyDecay float64

	// UncertaintyFloor is the minimum uncertainty after decay.
	UncertaintyFloor float64

	// MasteryThreshold is the mastery cutoff at or above which a concept
	// counts as mastered.
	MasteryThreshold float64

	// TargetSuccessRate is the probability of a correct answer the
	// difficulty targeting aims for.
	TargetSuccessRate float64

	// RecentWindow is how many recent attempts the policy analyzes.
	RecentWindow int

	// EloScaleFactor is the logistic scale of the rating model.
	EloScaleFactor float64

	// MaxGenerationAttempts bounds validation/dedup retries per turn.
	MaxGenerationAttempts int

	// CalibrationGain converts recent-accuracy error into a difficulty
	// adjustment. Exposed as a tuning knob; the default is deliberately
	// aggressive (5x the nominal offset).
	CalibrationGain float64
}

// Default returns a Config with the standard engine parameters.
func Default() Config {
	return Config{
		InitialSkillRating:    800.0,
		InitialUncertainty:    350.0,
		BaseKFactor:           64.0,
		UncertaintyDecay:      0.90,
		UncertaintyFloor:      50.0,
		MasteryThreshold:      0.75,
		TargetSuccessRate:     0.80,
		RecentWindow:          30,
		EloScaleFactor:        400.0,
		MaxGenerationAttempts: 3,
		CalibrationGain:       500.0,
	}
}

// FromEnv builds a Config from DRILL_* environment variables, falling back
// to defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Default()

	floats := []struct {
		env string
		dst *float64
	}{
		{"DRILL_INITIAL_SKILL_RATING", &cfg.InitialSkillRating},
		{"DRILL_INITIAL_UNCERTAINTY", &cfg.InitialUncertainty},
		{"DRILL_BASE_K_FACTOR", &cfg.BaseKFactor},
		{"DRILL_UNCERTAINTY_DECAY", &cfg.UncertaintyDecay},
		{"DRILL_UNCERTAINTY_FLOOR", &cfg.UncertaintyFloor},
		{"DRILL_MASTERY_THRESHOLD", &cfg.MasteryThreshold},
		{"DRILL_TARGET_SUCCESS_RATE", &cfg.TargetSuccessRate},
		{"DRILL_ELO_SCALE_FACTOR", &cfg.EloScaleFactor},
		{"DRILL_CALIBRATION_GAIN", &cfg.CalibrationGain},
	}
	for _, f := range floats {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.env, err)
		}
		*f.dst = parsed
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"DRILL_RECENT_WINDOW", &cfg.RecentWindow},
		{"DRILL_MAX_GENERATION_ATTEMPTS", &cfg.MaxGenerationAttempts},
	}
	for _, f := range ints {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.env, err)
		}
		*f.dst = parsed
	}

	return cfg, cfg.Validate()
}

// Validate checks that the parameters are internally consistent.
func (c Config) Validate() error {
	if c.TargetSuccessRate <= 0 || c.TargetSuccessRate >= 1 {
		return fmt.Errorf("target success rate must be in (0,1), got %v", c.TargetSuccessRate)
	}
	if c.UncertaintyDecay <= 0 || c.UncertaintyDecay > 1 {
		return fmt.Errorf("uncertainty decay must be in (0,1], got %v", c.UncertaintyDecay)
	}
	if c.UncertaintyFloor < 0 || c.UncertaintyFloor > c.InitialUncertainty {
		return fmt.Errorf("uncertainty floor must be in [0, initial uncertainty], got %v", c.UncertaintyFloor)
	}
	if c.RecentWindow <= 0 {
		return fmt.Errorf("recent window must be positive, got %d", c.RecentWindow)
	}
	if c.MaxGenerationAttempts <= 0 {
		return fmt.Errorf("max generation attempts must be positive, got %d", c.MaxGenerationAttempts)
	}
	return nil
}
