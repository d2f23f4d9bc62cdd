package store

import (
	"context"
	"time"

	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/elo"
	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/llm"
)

// Learner is a single student.
type Learner struct {
	ID        int
	Name      string
	CreatedAt time.Time
}

// Session is one sitting of practice. Active while EndedAt is nil.
type Session struct {
	ID             string
	LearnerID      int
	TopicID        int
	StartedAt      time.Time
	EndedAt        *time.Time
	TotalQuestions int
	TotalCorrect   int
	CurrentItemID  int
	LastResult     map[string]any
}

// SessionTotals summarizes a finished session.
type SessionTotals struct {
	Total    int
	Correct  int
	Accuracy float64
}

// EnrichedAttempt is an attempt row joined with the fields of its item
// that the policy and dedup layers need.
type EnrichedAttempt struct {
	ID            int
	ItemID        int
	LearnerID     int
	SessionID     string
	ConceptID     int
	AnswerGiven   string
	IsCorrect     bool
	PartialScore  float64
	ResponseTimeS float64
	RatingBefore  float64
	RatingAfter   float64
	Timestamp     time.Time

	// Item fields.
	Content       string
	CorrectAnswer string
	Difficulty    float64
	ItemType      string
	Options       []string
}

// AttemptRecord is the insert shape for one attempt.
type AttemptRecord struct {
	ItemID        int
	LearnerID     int
	SessionID     string
	ConceptID     int
	AnswerGiven   string
	IsCorrect     bool
	PartialScore  float64
	ResponseTimeS float64
	RatingBefore  float64
	RatingAfter   float64
}

// ItemReport is a learner-filed quality report against an item.
type ItemReport struct {
	ID        int
	ItemID    int
	LearnerID int
	Reason    string
	Details   string
	CreatedAt time.Time
}

// LearnerRepo manages learner rows.
type LearnerRepo interface {
	// CreateOrGet returns the learner with the given name, creating the
	// row on first use.
	CreateOrGet(ctx context.Context, name string) (*Learner, error)
}

// ConceptRepo provides curriculum access and seeding.
type ConceptRepo interface {
	ListTopics(ctx context.Context) ([]curriculum.Topic, error)
	TopicByName(ctx context.Context, name string) (*curriculum.Topic, error)

	// ListByTopic returns concepts ordered by order_index.
	ListByTopic(ctx context.Context, topicID int) ([]curriculum.Concept, error)
	ByID(ctx context.Context, id int) (curriculum.Concept, error)

	// SeedTopic installs a topic and its concepts. prereqs[i] lists
	// indexes into concepts that concept i depends on; the repo rewrites
	// them into assigned IDs. Idempotent by topic name.
	SeedTopic(ctx context.Context, topic curriculum.Topic, concepts []curriculum.Concept, prereqs [][]int) (int, error)
}

// SkillRepo manages per-concept skill state. An absent row reads as the
// default state.
type SkillRepo interface {
	Get(ctx context.Context, learnerID, conceptID int) (elo.State, error)
	ListForLearner(ctx context.Context, learnerID int) (map[int]elo.State, error)
	Upsert(ctx context.Context, learnerID, conceptID int, st elo.State) error
}

// AttemptRepo reads attempt history. Writes go through AttemptRecorder.
type AttemptRepo interface {
	// RecentEnriched returns the learner's last attempts joined with item
	// fields, newest first.
	RecentEnriched(ctx context.Context, learnerID, limit int) ([]EnrichedAttempt, error)

	// RecentForConcept is RecentEnriched restricted to one concept.
	RecentForConcept(ctx context.Context, learnerID, conceptID, limit int) ([]EnrichedAttempt, error)

	// CorrectTexts returns the normalized texts of every item the learner
	// has answered correctly, ever. The lifetime dedup source.
	CorrectTexts(ctx context.Context, learnerID int) ([]string, error)

	// ForSession returns a session's attempts in chronological order.
	ForSession(ctx context.Context, sessionID string) ([]EnrichedAttempt, error)
}

// AttemptRecorder is the transactional accept path: one attempt insert,
// one skill-state upsert, and one history snapshot, atomically.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, rec AttemptRecord, newState elo.State) (attemptID int, err error)
}

// ItemRepo manages accepted items. Rows are write-once, except for the
// rejection flag and reason set by MarkRejected.
type ItemRepo interface {
	Insert(ctx context.Context, item *itemgen.Item) (int, error)
	ByID(ctx context.Context, id int) (*itemgen.Item, error)
	MarkRejected(ctx context.Context, id int, reason string) error
}

// SessionRepo manages practice sessions.
type SessionRepo interface {
	Create(ctx context.Context, learnerID, topicID int) (*Session, error)
	ByID(ctx context.Context, id string) (*Session, error)

	// SetCurrent stores the displayed item and the previous turn's result
	// blob on the session row.
	SetCurrent(ctx context.Context, sessionID string, itemID int, lastResult map[string]any) error

	// End computes totals from the session's attempts and closes it.
	End(ctx context.Context, sessionID string) (*SessionTotals, error)

	// RecentForLearner returns the learner's latest sessions, newest first.
	RecentForLearner(ctx context.Context, learnerID, limit int) ([]*Session, error)
}

// ReportRepo manages item quality reports.
type ReportRepo interface {
	Insert(ctx context.Context, report ItemReport) error
	ListByItem(ctx context.Context, itemID int) ([]ItemReport, error)
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
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

// EventRepo provides append access to operational events. It satisfies
// llm.EventSink so the provider middleware can log through it.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data llm.RequestEvent) error

	// QueryLLMEvents returns the most recent events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// GetLLMEvent returns one event by id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
