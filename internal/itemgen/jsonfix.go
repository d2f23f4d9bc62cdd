package itemgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*\n(.*?)\n```")
	jsonObjectRe  = regexp.MustCompile(`(?s)\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
	jsonArrayRe   = regexp.MustCompile(`(?s)\[.*\]`)
)

// ParseObject extracts a JSON object from raw LLM output. It tries, in
// order: the raw text, the text with repaired escape sequences, a fenced
// code block, and the first {...} or [...] region. Arrays are unwrapped to
// their first object element.
func ParseObject(text string) (map[string]any, error) {
	cleaned := strings.TrimSpace(text)

	if v, err := tryDecode(cleaned); err == nil {
		return v, nil
	}
	if v, err := tryDecode(fixInvalidEscapes(cleaned)); err == nil {
		return v, nil
	}

	if m := fencedBlockRe.FindStringSubmatch(cleaned); m != nil {
		block := strings.TrimSpace(m[1])
		for _, attempt := range []string{block, fixInvalidEscapes(block)} {
			if v, err := tryDecode(attempt); err == nil {
				return v, nil
			}
		}
	}

	for _, re := range []*regexp.Regexp{jsonObjectRe, jsonArrayRe} {
		if m := re.FindString(cleaned); m != "" {
			for _, attempt := range []string{m, fixInvalidEscapes(m)} {
				if v, err := tryDecode(attempt); err == nil {
					return v, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("no valid JSON object in response")
}

// tryDecode parses text as a JSON object, unwrapping a top-level array to
// its first object element.
func tryDecode(text string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, nil
	}
	var arr []any
	if err := json.Unmarshal([]byte(text), &arr); err == nil {
		for _, el := range arr {
			if m, ok := el.(map[string]any); ok {
				return m, nil
			}
		}
		return nil, fmt.Errorf("JSON array contains no object")
	}
	return nil, fmt.Errorf("not a JSON object")
}

// fixInvalidEscapes repairs escape sequences that LLMs emit inside JSON
// string values when writing LaTeX, e.g. \( \) \sqrt \times. Every \X that
// is not \" or \\ gets its backslash doubled so the decoder treats it as a
// literal character.
func fixInvalidEscapes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '\\' || i+1 >= len(text) {
			b.WriteByte(text[i])
			continue
		}
		next := text[i+1]
		switch next {
		case '"', '\\':
			// Structural JSON escapes stay as-is.
			b.WriteByte('\\')
			b.WriteByte(next)
		default:
			b.WriteString(`\\`)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}
