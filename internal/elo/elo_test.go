package elo

import (
	"math"
	"testing"

	"github.com/nmalhotra/drill/internal/config"
)

func TestProbability_EqualRatingAndDifficulty(t *testing.T) {
	cfg := config.Default()
	p := Probability(800, 800, cfg)
	if math.Abs(p-0.5) > 1e-9 {
		t.Errorf("P(S=D) = %v, want 0.5", p)
	}
}

func TestProbability_Clamped(t *testing.T) {
	cfg := config.Default()
	if p := Probability(10000, 0, cfg); p >= 1 {
		t.Errorf("probability not clamped below 1: %v", p)
	}
	if p := Probability(0, 10000, cfg); p <= 0 {
		t.Errorf("probability not clamped above 0: %v", p)
	}
}

func TestTargetDifficulty_RoundTrip(t *testing.T) {
	cfg := config.Default()
	for _, target := range []float64{0.2, 0.5, 0.8, 0.95} {
		cfg.TargetSuccessRate = target
		d := TargetDifficulty(1000, cfg)
		p := Probability(1000, d, cfg)
		if math.Abs(p-target) > 1e-6 {
			t.Errorf("round trip for p=%v: got %v", target, p)
		}
	}
}

func TestTargetDifficulty_At80Percent(t *testing.T) {
	cfg := config.Default()
	d := TargetDifficulty(800, cfg)
	// D = S + 400*log10(0.25) ~= S - 240.8
	if math.Abs(d-(800-240.82)) > 0.1 {
		t.Errorf("target difficulty = %v, want ~559.2", d)
	}
}

func TestKFactor_UncertaintyScaling(t *testing.T) {
	cfg := config.Default()
	full := KFactor(cfg.InitialUncertainty, 0, cfg)
	if full != cfg.BaseKFactor {
		t.Errorf("K at initial uncertainty = %v, want %v", full, cfg.BaseKFactor)
	}
	half := KFactor(cfg.InitialUncertainty/2, 0, cfg)
	if half != cfg.BaseKFactor/2 {
		t.Errorf("K at half uncertainty = %v, want %v", half, cfg.BaseKFactor/2)
	}
}

func TestKFactor_StreakBonus(t *testing.T) {
	cfg := config.Default()
	base := KFactor(cfg.InitialUncertainty, 1, cfg)
	boosted := KFactor(cfg.InitialUncertainty, 2, cfg)
	if boosted != base*2 {
		t.Errorf("streak bonus: got %v, want %v", boosted, base*2)
	}
}

func TestUpdate_RatingMonotonicInOutcome(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	for _, d := range []float64{400, 800, 1200} {
		up := Update(s, true, d, 0, cfg)
		down := Update(s, false, d, 0, cfg)
		if up.Rating < s.Rating {
			t.Errorf("correct at D=%v decreased rating: %v -> %v", d, s.Rating, up.Rating)
		}
		if down.Rating > s.Rating {
			t.Errorf("incorrect at D=%v increased rating: %v -> %v", d, s.Rating, down.Rating)
		}
	}
}

func TestUpdate_UncertaintyDecaysToFloor(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	prev := s.Uncertainty
	for i := 0; i < 100; i++ {
		s = Update(s, i%2 == 0, 700, 0, cfg)
		if s.Uncertainty > prev {
			t.Fatalf("uncertainty increased at attempt %d: %v -> %v", i, prev, s.Uncertainty)
		}
		prev = s.Uncertainty
	}
	if s.Uncertainty != cfg.UncertaintyFloor {
		t.Errorf("uncertainty after 100 attempts = %v, want floor %v", s.Uncertainty, cfg.UncertaintyFloor)
	}
}

func TestUpdate_FirstAttempt(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	d := TargetDifficulty(s.Rating, cfg)
	next := Update(s, true, d, 0, cfg)

	if next.Rating <= 800 {
		t.Errorf("rating after first correct = %v, want > 800", next.Rating)
	}
	if math.Abs(next.Uncertainty-315) > 1e-9 {
		t.Errorf("uncertainty after first attempt = %v, want 315", next.Uncertainty)
	}
	if next.TotalAttempts != 1 || next.CorrectAttempts != 1 {
		t.Errorf("counters = %d/%d, want 1/1", next.CorrectAttempts, next.TotalAttempts)
	}
}

func TestMastery_Blend(t *testing.T) {
	tests := []struct {
		rating float64
		acc    float64
		want   float64
	}{
		{400, 0, 0},
		{1600, 1, 1},
		{1300, 0.95, 0.6*0.75 + 0.4*0.95},
		{800, 0.5, 0.6*(400.0/1200.0) + 0.4*0.5},
	}
	for _, tt := range tests {
		got := Mastery(tt.rating, tt.acc)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Mastery(%v, %v) = %v, want %v", tt.rating, tt.acc, got, tt.want)
		}
	}
}

func TestMastery_ScenarioColdStartNotMastered(t *testing.T) {
	cfg := config.Default()
	s := NewState(cfg)
	d := TargetDifficulty(s.Rating, cfg)
	next := Update(s, true, d, 0, cfg)
	m := Mastery(next.Rating, 1.0)
	if IsMastered(m, cfg) {
		t.Errorf("mastery after one correct answer = %v, should be below %v", m, cfg.MasteryThreshold)
	}
}

func TestCalibrate(t *testing.T) {
	cfg := config.Default()
	if got := Calibrate(600, 0.2, 2, cfg); got != 600 {
		t.Errorf("calibrate with <3 attempts = %v, want unchanged 600", got)
	}
	if got := Calibrate(600, 0.9, 10, cfg); math.Abs(got-650) > 1e-9 {
		t.Errorf("calibrate above target = %v, want 650", got)
	}
	if got := Calibrate(600, 0.6, 10, cfg); math.Abs(got-500) > 1e-9 {
		t.Errorf("calibrate below target = %v, want 500", got)
	}
}
