package itemgen

import "github.com/nmalhotra/drill/internal/curriculum"

// Type describes how the learner answers an item.
type Type string

const (
	// TypeMCQ is a four-option multiple choice question.
	TypeMCQ Type = "mcq"

	// TypeShortAnswer expects a short typed response.
	TypeShortAnswer Type = "short_answer"

	// TypeProblem is a multi-step problem graded by the LLM.
	TypeProblem Type = "problem"
)

// TypeForMastery maps a mastery level to the item type band:
// MCQ early, short answer mid, open problems late.
func TypeForMastery(mastery float64) Type {
	switch {
	case mastery < 0.3:
		return TypeMCQ
	case mastery < 0.6:
		return TypeShortAnswer
	default:
		return TypeProblem
	}
}

// VisualSpec carries the parameters of a locally generated visual.
// Rendering is the presentation layer's job; the core only records what to
// draw.
type VisualSpec struct {
	// Kind identifies the renderer, e.g. "clock" or "number-line".
	Kind string `json:"kind"`

	// Params holds renderer-specific values, e.g. hour/minute for a clock.
	Params map[string]float64 `json:"params"`
}

// Item is a candidate or accepted question.
type Item struct {
	ID            int
	ConceptID     int
	Content       string
	Type          Type
	Options       []string
	CorrectAnswer string
	Explanation   string
	Difficulty    float64
	EstimatedP    float64
	PromptUsed    string
	ModelUsed     string
	Visual        *VisualSpec
}

// GenerateInput holds all context needed to produce one item.
type GenerateInput struct {
	// Concept is the focus concept for the item.
	Concept curriculum.Concept

	// TopicName labels the concept's topic for the prompt.
	TopicName string

	// TargetDifficulty is the calibrated rating-scale difficulty.
	TargetDifficulty float64

	// Type is the requested item type.
	Type Type

	// DedupHints lists question texts the LLM must not repeat.
	DedupHints []string
}
