package itemgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/nmalhotra/drill/internal/config"
	"github.com/nmalhotra/drill/internal/llm"
)

// ErrNoItem is returned when generation exhausts its retries without an
// acceptable candidate. Callers treat it as "no item", not a crash.
var ErrNoItem = errors.New("no acceptable item after generation retries")

// Pipeline drives item generation: local generators first, then the LLM
// with validation and dedup retries.
type Pipeline struct {
	provider    llm.Provider
	cfg         config.Config
	validators  []Validator
	locals      []LocalGenerator
	distractors *DistractorGen

	maxTokens   int
	temperature float64
}

// NewPipeline builds a Pipeline with the default validator chain and local
// generators.
func NewPipeline(provider llm.Provider, cfg config.Config, rng *rand.Rand) *Pipeline {
	return &Pipeline{
		provider:    provider,
		cfg:         cfg,
		validators:  DefaultValidators(),
		locals:      DefaultLocalGenerators(rng),
		distractors: NewDistractorGen(rng),
		maxTokens:   768,
		temperature: 0.7,
	}
}

// Generate produces one accepted item for the input, or ErrNoItem when
// every candidate was rejected.
func (p *Pipeline) Generate(ctx context.Context, input GenerateInput, dedup *DedupRegistry) (*Item, error) {
	input.DedupHints = dedup.PromptHints(0)

	// Concepts with a local generator never touch the LLM.
	if gen := MatchLocalGenerator(p.locals, input.Concept.Name, input.Concept.Description); gen != nil {
		avoid := make(map[string]bool, len(input.DedupHints))
		for _, h := range input.DedupHints {
			avoid[h] = true
		}
		item := gen.Generate(input, avoid)
		if item == nil {
			return nil, ErrNoItem
		}
		if verr := RunValidators(p.validators, item, input); verr != nil {
			return nil, fmt.Errorf("local generator produced invalid item: %w", verr)
		}
		if dedup.IsDuplicate(item.Content) {
			return nil, ErrNoItem
		}
		return item, nil
	}

	ctx = llm.WithPurpose(ctx, "item-gen")

	var lastReject error
	for attemptNum := 0; attemptNum < p.cfg.MaxGenerationAttempts; attemptNum++ {
		item, err := p.generateOnce(ctx, input, attemptNum)
		if err != nil {
			lastReject = err
			continue
		}
		if dedup.IsDuplicate(item.Content) {
			lastReject = fmt.Errorf("dedup rejected %q", NormalizeText(item.Content))
			continue
		}
		// Replace placeholder distractors with computed ones before the
		// item leaves the pipeline.
		if item.Type == TypeMCQ && HasPlaceholderOptions(item.Options) {
			p.distractors.FillOptions(item)
		}
		return item, nil
	}

	if lastReject != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoItem, lastReject)
	}
	return nil, ErrNoItem
}

// generateOnce performs one LLM call and full validation.
func (p *Pipeline) generateOnce(ctx context.Context, input GenerateInput, attemptNum int) (*Item, error) {
	prompt := BuildPrompt(input)
	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      ItemSchema,
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	raw, err := ParseObject(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("unparseable LLM response: %w", err)
	}

	item := &Item{
		ConceptID:     input.Concept.ID,
		Content:       stringField(raw, "question"),
		Type:          input.Type,
		Options:       stringSliceField(raw, "options"),
		CorrectAnswer: stringField(raw, "correct_answer"),
		Explanation:   stringField(raw, "explanation"),
		Difficulty:    input.TargetDifficulty,
		PromptUsed:    prompt,
		ModelUsed:     resp.Model,
	}
	if item.Content == "" {
		return nil, fmt.Errorf("LLM returned an empty question")
	}

	// MCQ candidates without options get placeholders so the
	// option-dependent rules have data to check. Real distractors are
	// computed after acceptance.
	if item.Type == TypeMCQ && len(item.Options) == 0 && item.CorrectAnswer != "" {
		item.Options = PlaceholderOptions(item.CorrectAnswer, attemptNum)
	}

	if verr := RunValidators(p.validators, item, input); verr != nil {
		return nil, verr
	}
	return item, nil
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func stringSliceField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
