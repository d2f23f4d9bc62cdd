package llm

import "context"

// RequestEvent captures one LLM API call for the event log.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventSink receives request events from the logging middleware. The
// storage layer implements it; this package stays free of storage
// dependencies.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, data RequestEvent) error
}
