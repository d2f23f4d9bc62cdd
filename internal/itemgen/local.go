package itemgen

import (
	"fmt"
	"math/rand"
	"strings"
)

// LocalGenerator produces items deterministically for concepts the LLM
// handles poorly. Generators are keyword-matched against the concept.
type LocalGenerator interface {
	// Matches reports whether this generator covers the concept.
	Matches(name, description string) bool

	// Generate produces an item, avoiding the normalized texts in avoid.
	// Returns nil when every variant is exhausted.
	Generate(input GenerateInput, avoid map[string]bool) *Item
}

// DefaultLocalGenerators returns the built-in local generators.
func DefaultLocalGenerators(rng *rand.Rand) []LocalGenerator {
	return []LocalGenerator{
		&ClockGenerator{rng: rng},
		&NumberLineGenerator{rng: rng},
	}
}

// MatchLocalGenerator returns the first generator covering the concept, or
// nil.
func MatchLocalGenerator(gens []LocalGenerator, name, description string) LocalGenerator {
	for _, g := range gens {
		if g.Matches(name, description) {
			return g
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Clock reading
// ---------------------------------------------------------------------------

var clockKeywords = []string{
	"clock", "telling time", "tell time", "analog time",
	"read time", "reading time", "reading clocks", "analog clock",
}

// ClockGenerator produces analog clock-reading MCQs with a clock visual
// spec instead of calling the LLM.
type ClockGenerator struct {
	rng *rand.Rand
}

func (g *ClockGenerator) Matches(name, description string) bool {
	text := strings.ToLower(name + " " + description)
	for _, kw := range clockKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func (g *ClockGenerator) Generate(input GenerateInput, avoid map[string]bool) *Item {
	text := strings.ToLower(input.Concept.Name + " " + input.Concept.Description)
	hourOnly := strings.Contains(text, "hour") &&
		!strings.Contains(text, "half") && !strings.Contains(text, "quarter")

	type hm struct{ hour, minute int }
	var candidates []hm
	if hourOnly {
		for h := 1; h <= 12; h++ {
			candidates = append(candidates, hm{h, 0})
		}
	} else {
		for h := 1; h <= 12; h++ {
			for _, m := range []int{0, 15, 30, 45} {
				candidates = append(candidates, hm{h, m})
			}
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	const template = "What time does this clock show?"
	picked, found := candidates[0], false
	for _, c := range candidates {
		key := NormalizeText(fmt.Sprintf("%s [%s]", template, formatClockTime(c.hour, c.minute)))
		if !avoid[key] {
			picked, found = c, true
			break
		}
	}
	if !found {
		return nil
	}

	correct := formatClockTime(picked.hour, picked.minute)

	// Plausible wrong times.
	wrong := map[string]bool{}
	for len(wrong) < 3 {
		var t string
		if hourOnly {
			t = formatClockTime(1+g.rng.Intn(12), 0)
		} else {
			t = formatClockTime(1+g.rng.Intn(12), []int{0, 15, 30, 45}[g.rng.Intn(4)])
		}
		if t != correct {
			wrong[t] = true
		}
	}
	options := []string{correct}
	for t := range wrong {
		options = append(options, t)
	}
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Item{
		ConceptID:     input.Concept.ID,
		Content:       fmt.Sprintf("%s [%s]", template, correct),
		Type:          TypeMCQ,
		Options:       WithLetterPrefixes(options),
		CorrectAnswer: correct,
		Explanation:   clockHint(picked.minute),
		Difficulty:    input.TargetDifficulty,
		ModelUsed:     "local-clock",
		Visual: &VisualSpec{
			Kind: "clock",
			Params: map[string]float64{
				"hour":   float64(picked.hour),
				"minute": float64(picked.minute),
			},
		},
	}
}

func formatClockTime(hour, minute int) string {
	return fmt.Sprintf("%d:%02d", hour, minute)
}

func clockHint(minute int) string {
	switch minute {
	case 0:
		return "Look where the short hand points. That's the hour. The long hand on 12 means o'clock."
	case 30:
		return "The long hand on 6 means half past. The short hand shows the hour."
	case 15:
		return "The long hand on 3 means quarter past. The short hand shows the hour."
	default:
		return "The long hand on 9 means quarter to the next hour."
	}
}

// ---------------------------------------------------------------------------
// Number-line inequalities
// ---------------------------------------------------------------------------

var numberLineKeywords = []string{
	"number line", "inequality", "inequalities", "greater than", "less than",
	"comparing numbers",
}

// NumberLineGenerator produces which-number-is-greater questions with a
// number-line visual spec.
type NumberLineGenerator struct {
	rng *rand.Rand
}

func (g *NumberLineGenerator) Matches(name, description string) bool {
	text := strings.ToLower(name + " " + description)
	for _, kw := range numberLineKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func (g *NumberLineGenerator) Generate(input GenerateInput, avoid map[string]bool) *Item {
	for tries := 0; tries < 40; tries++ {
		a := g.rng.Intn(99) + 1
		b := g.rng.Intn(99) + 1
		if a == b {
			continue
		}
		content := fmt.Sprintf("Which number is greater: %d or %d?", a, b)
		if avoid[NormalizeText(content)] {
			continue
		}
		greater, lesser := a, b
		if b > a {
			greater, lesser = b, a
		}
		return &Item{
			ConceptID:     input.Concept.ID,
			Content:       content,
			Type:          TypeMCQ,
			Options:       WithLetterPrefixes([]string{fmt.Sprintf("%d", a), fmt.Sprintf("%d", b), "They are equal"}),
			CorrectAnswer: fmt.Sprintf("%d", greater),
			Explanation:   fmt.Sprintf("%d comes after %d when counting up, so %d is greater.", greater, lesser, greater),
			Difficulty:    input.TargetDifficulty,
			ModelUsed:     "local-number-line",
			Visual: &VisualSpec{
				Kind: "number-line",
				Params: map[string]float64{
					"a": float64(a),
					"b": float64(b),
				},
			},
		}
	}
	return nil
}
