package store

import (
	"context"
	"fmt"

	"github.com/nmalhotra/drill/ent"
	"github.com/nmalhotra/drill/ent/llmrequestevent"
	"github.com/nmalhotra/drill/internal/llm"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data llm.RequestEvent) error {
	builder := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)
	if data.Model != "" {
		builder = builder.SetModel(data.Model)
	}
	if data.Purpose != "" {
		builder = builder.SetPurpose(data.Purpose)
	}
	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}
	if data.RequestBody != "" {
		builder = builder.SetRequestBody(data.RequestBody)
	}
	if data.ResponseBody != "" {
		builder = builder.SetResponseBody(data.ResponseBody)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp), ent.Desc(llmrequestevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	out := make([]LLMEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, entEventToLLMEvent(row))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get llm event %d: %w", id, err)
	}
	e := entEventToLLMEvent(row)
	return &e, nil
}

func entEventToLLMEvent(row *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
