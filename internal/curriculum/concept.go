// Package curriculum defines the concept graph the policy engine walks.
//
// A topic is an ordered set of concepts. Each concept may name
// prerequisites within the same topic; the prerequisite graph is a DAG and
// order_index is a partial-order hint used for fallback selection.
package curriculum

import "strings"

// Topic groups concepts into a course of study.
type Topic struct {
	ID          int
	Name        string
	Description string
}

// Concept is a single curriculum node: a focused, testable objective.
type Concept struct {
	ID               int
	TopicID          int
	Name             string
	Description      string
	OrderIndex       int
	Prerequisites    []int
	MasteryThreshold float64

	// VisualRequired marks concepts whose items need images the generator
	// cannot produce. The policy skips them.
	VisualRequired bool
}

// visualKeywords flags concept names/descriptions that depend on pictures,
// graphs, or other visuals that text generation cannot carry.
var visualKeywords = []string{
	"picture graph",
	"bar graph",
	"pictograph",
	"tally chart",
	"shapes",
	"symmetry",
	"pattern blocks",
}

// NeedsVisuals reports whether a concept is visual-bound, either by its
// explicit flag or by keyword match on its name and description.
func (c Concept) NeedsVisuals() bool {
	if c.VisualRequired {
		return true
	}
	text := strings.ToLower(c.Name + " " + c.Description)
	for _, kw := range visualKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
