package itemgen

import (
	"fmt"
	"strings"
)

// placeholderMarkers indicate the LLM described a visual it cannot emit.
var placeholderMarkers = []string{
	"[shows", "[image", "[picture", "[display", "[insert",
}

// visualContextPhrases require the learner to see something the system
// cannot render.
var visualContextPhrases = []string{
	"which is longer", "which is shorter", "which is taller",
	"look at the picture", "look at the image", "look at the graph",
	"use the graph", "use the picture", "use the chart",
	"the figure shows", "the picture shows", "the diagram shows",
	"in the figure", "in the picture below", "shown below",
	"based on the graph", "based on the chart",
}

// diagramDescriptions are text renderings of diagrams (number lines and the
// like) that only make sense drawn.
var diagramDescriptions = []string{
	"open circle at", "closed circle at", "filled circle at",
	"shading to the right", "shading to the left",
	"shaded to the right", "shaded to the left",
	"arrow pointing", "on the number line shown",
}

// drawImperatives demand learner-generated visuals that cannot be graded.
var drawImperatives = []string{
	"draw ", "sketch ", "graph the", "plot the", "shade the", "color the",
	"circle the picture",
}

// VisualValidator rejects items that depend on visuals: placeholder
// markers, visual-context phrasing, textual diagram descriptions, and
// draw/sketch instructions.
type VisualValidator struct{}

func (v *VisualValidator) Name() string { return "visual" }

func (v *VisualValidator) Validate(item *Item, _ GenerateInput) *ValidationError {
	// Locally generated items carry their own visual spec and are exempt.
	if item.Visual != nil {
		return nil
	}

	qLower := strings.ToLower(item.Content)

	for _, m := range placeholderMarkers {
		if strings.Contains(qLower, m) {
			return v.fail(fmt.Sprintf("placeholder marker: %q", m))
		}
	}
	for _, p := range visualContextPhrases {
		if strings.Contains(qLower, p) {
			return v.fail(fmt.Sprintf("visual context phrase: %q", p))
		}
	}
	for _, d := range diagramDescriptions {
		if strings.Contains(qLower, d) {
			return v.fail(fmt.Sprintf("textual diagram description: %q", d))
		}
	}
	for _, d := range drawImperatives {
		if strings.HasPrefix(qLower, strings.TrimSpace(d)+" ") || strings.Contains(qLower, ". "+d) {
			return v.fail(fmt.Sprintf("requires learner-drawn visual: %q", strings.TrimSpace(d)))
		}
	}

	return nil
}

func (v *VisualValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
