// Package elo implements the rating-with-uncertainty skill model.
//
// Core formulas:
//
//	P(correct)        = 1 / (1 + 10^((D - S) / scale))
//	target difficulty = S + scale * log10(1/P_target - 1)
//	delta             = K * (actual - expected)
//	K                 = base_K * (uncertainty / initial_uncertainty) * streak_bonus
//
// All functions are pure; persistence lives elsewhere.
package elo

import (
	"math"
	"time"

	"github.com/nmalhotra/drill/internal/config"
)

// pEpsilon keeps probabilities away from 0 and 1 before logs are taken.
const pEpsilon = 1e-6

// streakBonus doubles the K-factor while the learner is on a run of
// correct answers, so ratings ramp quickly for confident learners.
const streakBonus = 2.0

// State is the learner's skill state on a single concept.
type State struct {
	Rating          float64
	Uncertainty     float64
	Mastery         float64
	TotalAttempts   int
	CorrectAttempts int
	LastUpdated     time.Time
}

// NewState returns the default state for an unattempted concept.
func NewState(cfg config.Config) State {
	return State{
		Rating:      cfg.InitialSkillRating,
		Uncertainty: cfg.InitialUncertainty,
	}
}

// Accuracy returns the lifetime accuracy ratio for this state.
func (s State) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0.0
	}
	return float64(s.CorrectAttempts) / float64(s.TotalAttempts)
}

// Probability returns P(correct) for a learner of the given rating facing an
// item of the given difficulty. The result is clamped to
// (pEpsilon, 1-pEpsilon) so callers can safely take logs.
func Probability(rating, difficulty float64, cfg config.Config) float64 {
	p := 1.0 / (1.0 + math.Pow(10, (difficulty-rating)/cfg.EloScaleFactor))
	return clamp(p, pEpsilon, 1-pEpsilon)
}

// TargetDifficulty computes the difficulty D at which the learner's
// probability of success equals cfg.TargetSuccessRate. For P=0.80 this is
// roughly rating - 241.
func TargetDifficulty(rating float64, cfg config.Config) float64 {
	p := cfg.TargetSuccessRate
	if p <= 0 || p >= 1 {
		return rating
	}
	return rating + cfg.EloScaleFactor*math.Log10(1.0/p-1.0)
}

// KFactor computes the update step size. High uncertainty means large
// updates; a streak of 2+ correct answers doubles the step.
func KFactor(uncertainty float64, streak int, cfg config.Config) float64 {
	k := cfg.BaseKFactor * (uncertainty / cfg.InitialUncertainty)
	if streak >= 2 {
		k *= streakBonus
	}
	return k
}

// Update applies one attempt outcome to the state and returns the new state.
// The uncertainty decays by cfg.UncertaintyDecay per attempt, floored at
// cfg.UncertaintyFloor.
func Update(s State, correct bool, difficulty float64, streak int, cfg config.Config) State {
	expected := Probability(s.Rating, difficulty, cfg)
	actual := 0.0
	if correct {
		actual = 1.0
	}
	k := KFactor(s.Uncertainty, streak, cfg)

	next := s
	next.Rating = s.Rating + k*(actual-expected)
	next.Uncertainty = math.Max(cfg.UncertaintyFloor, s.Uncertainty*cfg.UncertaintyDecay)
	next.TotalAttempts++
	if correct {
		next.CorrectAttempts++
	}
	next.LastUpdated = time.Now().UTC()
	return next
}

// Mastery blends the normalized rating with recent accuracy on the concept.
// Ratings are normalized over the 400-1600 band.
func Mastery(rating, recentAccuracy float64) float64 {
	normalized := clamp((rating-400)/1200, 0, 1)
	return 0.6*normalized + 0.4*recentAccuracy
}

// IsMastered reports whether a mastery value clears the threshold.
func IsMastered(mastery float64, cfg config.Config) bool {
	return mastery >= cfg.MasteryThreshold
}

// Calibrate nudges a target difficulty toward the configured success rate
// based on the learner's recent accuracy on the concept. With fewer than 3
// attempts the base target is returned unchanged.
func Calibrate(targetDifficulty, recentAccuracy float64, attempts int, cfg config.Config) float64 {
	if attempts < 3 {
		return targetDifficulty
	}
	return targetDifficulty + cfg.CalibrationGain*(recentAccuracy-cfg.TargetSuccessRate)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
