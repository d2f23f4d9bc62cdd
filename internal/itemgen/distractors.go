package itemgen

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// DistractorGen computes plausible wrong answers from the correct answer.
// The random source is injected so tests can be deterministic.
type DistractorGen struct {
	rng *rand.Rand
}

// NewDistractorGen creates a generator using the given random source.
func NewDistractorGen(rng *rand.Rand) *DistractorGen {
	return &DistractorGen{rng: rng}
}

// Compute returns numOptions-1 distractor strings (no letter prefixes).
// Numeric answers get off-by-step, doubled, and halved variants; text
// answers get simple mutations.
func (g *DistractorGen) Compute(correctAnswer string, numOptions int) []string {
	correct := StripLetterPrefix(correctAnswer)

	var distractors []string
	if num, ok := ParseNumeric(correct); ok {
		distractors = g.numeric(num)
	} else {
		distractors = g.text(correct)
	}

	// Top up with fallbacks, avoiding duplicates of each other and of the
	// correct answer.
	used := map[string]bool{strings.ToLower(correct): true}
	var out []string
	for _, d := range distractors {
		key := strings.ToLower(d)
		if !used[key] {
			used[key] = true
			out = append(out, d)
		}
		if len(out) == numOptions-1 {
			return out
		}
	}
	for tries := 0; len(out) < numOptions-1 && tries < 20; tries++ {
		d := g.fallback(correct)
		key := strings.ToLower(d)
		if !used[key] {
			used[key] = true
			out = append(out, d)
		}
	}
	return out
}

func (g *DistractorGen) numeric(correct float64) []string {
	isInt := correct == math.Trunc(correct)

	var step float64
	if math.Abs(correct) < 10 {
		step = 1
		if !isInt {
			step = 0.5
		}
	} else {
		step = math.Max(1, math.Trunc(math.Abs(correct)*0.1))
	}

	var out []string
	add := func(v float64) {
		if v != correct && v >= 0 {
			out = append(out, formatDistractor(v, isInt))
		}
	}

	// Off-by-step in both directions.
	for _, d := range []float64{step, -step, step * 2, -step * 2} {
		add(correct + d)
	}
	// Doubling/halving errors.
	if correct != 0 {
		add(correct * 2)
		add(correct / 2)
	}
	// A nearby random slip.
	if math.Abs(correct) > 5 {
		sign := float64(1)
		if g.rng.Intn(2) == 0 {
			sign = -1
		}
		add(correct + sign*float64(1+g.rng.Intn(3)))
	}
	return out
}

func (g *DistractorGen) text(correct string) []string {
	var out []string
	// Case and truncation variants for short text answers.
	if upper := strings.ToUpper(correct); upper != correct {
		out = append(out, upper)
	}
	if len(correct) > 3 {
		out = append(out, correct[:len(correct)-1])
		out = append(out, correct+"s")
	}
	return out
}

func (g *DistractorGen) fallback(correct string) string {
	if num, ok := ParseNumeric(correct); ok {
		delta := float64(g.rng.Intn(9) + 1)
		v := num + delta
		return formatDistractor(v, num == math.Trunc(num))
	}
	return correct + " " + string(rune('a'+g.rng.Intn(26)))
}

func formatDistractor(v float64, isInt bool) string {
	if isInt || v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s
}

// FillOptions replaces placeholder options with computed distractors and a
// letter-prefixed option set containing the correct answer first shuffled
// into a random position.
func (g *DistractorGen) FillOptions(item *Item) {
	if item.Type != TypeMCQ {
		return
	}
	correct := SanitizeAnswer(item.CorrectAnswer)
	distractors := g.Compute(correct, 4)

	options := append([]string{correct}, distractors...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	item.Options = WithLetterPrefixes(options)
	// Re-point the answer at its letter so graders can match either way.
	for i, o := range item.Options {
		if StripLetterPrefix(o) == correct {
			item.CorrectAnswer = mcqLetters[i]
			break
		}
	}
}
