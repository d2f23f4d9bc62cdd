package curriculum

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on a topic's concept set.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(concepts []Concept) error {
	var errs []string

	idSet := make(map[int]bool, len(concepts))
	for _, c := range concepts {
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %d", c.ID))
		}
		idSet[c.ID] = true
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Sprintf("concept %d has an empty name", c.ID))
		}
	}

	// Dangling prerequisites.
	for _, c := range concepts {
		for _, pid := range c.Prerequisites {
			if !idSet[pid] {
				errs = append(errs, fmt.Sprintf("concept %d references nonexistent prerequisite %d", c.ID, pid))
			}
			if pid == c.ID {
				errs = append(errs, fmt.Sprintf("concept %d lists itself as a prerequisite", c.ID))
			}
		}
	}

	// Cycle detection via Kahn's algorithm.
	inDegree := make(map[int]int, len(concepts))
	adj := make(map[int][]int)
	for _, c := range concepts {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, pid := range c.Prerequisites {
			adj[pid] = append(adj[pid], c.ID)
		}
	}

	var queue []int
	for _, c := range concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited < len(concepts) {
		var cycle []string
		for _, c := range concepts {
			if inDegree[c.ID] > 0 {
				cycle = append(cycle, fmt.Sprintf("%d", c.ID))
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving concepts: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
