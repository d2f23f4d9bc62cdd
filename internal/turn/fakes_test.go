package turn

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/elo"
	"github.com/nmalhotra/drill/internal/grader"
	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/store"
)

// memStore is an in-memory implementation of the repository contract used
// to exercise the engine without a database.
type memStore struct {
	mu sync.Mutex

	learners  map[string]*store.Learner
	topics    []curriculum.Topic
	concepts  []curriculum.Concept
	skills    map[[2]int]elo.State
	attempts  []store.EnrichedAttempt
	history   int
	items     map[int]*itemgen.Item
	sessions  map[string]*store.Session
	nextID    int
	failTx    bool
	txRecords int
}

func newMemStore(concepts []curriculum.Concept) *memStore {
	return &memStore{
		learners: make(map[string]*store.Learner),
		topics:   []curriculum.Topic{{ID: 1, Name: "Arithmetic"}},
		concepts: concepts,
		skills:   make(map[[2]int]elo.State),
		items:    make(map[int]*itemgen.Item),
		sessions: make(map[string]*store.Session),
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

// --- LearnerRepo ---

func (m *memStore) CreateOrGet(_ context.Context, name string) (*store.Learner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.learners[name]; ok {
		return l, nil
	}
	l := &store.Learner{ID: m.id(), Name: name, CreatedAt: time.Now()}
	m.learners[name] = l
	return l, nil
}

// --- ConceptRepo ---

func (m *memStore) ListTopics(context.Context) ([]curriculum.Topic, error) {
	return m.topics, nil
}

func (m *memStore) TopicByName(_ context.Context, name string) (*curriculum.Topic, error) {
	for _, t := range m.topics {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListByTopic(_ context.Context, topicID int) ([]curriculum.Concept, error) {
	var out []curriculum.Concept
	for _, c := range m.concepts {
		if c.TopicID == topicID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) ByID(_ context.Context, id int) (curriculum.Concept, error) {
	for _, c := range m.concepts {
		if c.ID == id {
			return c, nil
		}
	}
	return curriculum.Concept{}, fmt.Errorf("concept %d not found", id)
}

func (m *memStore) SeedTopic(context.Context, curriculum.Topic, []curriculum.Concept, [][]int) (int, error) {
	return 1, nil
}

// --- SkillRepo ---

func (m *memStore) Get(_ context.Context, learnerID, conceptID int) (elo.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.skills[[2]int{learnerID, conceptID}]; ok {
		return st, nil
	}
	return elo.State{Rating: 800, Uncertainty: 350}, nil
}

func (m *memStore) ListForLearner(_ context.Context, learnerID int) (map[int]elo.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int]elo.State)
	for k, v := range m.skills {
		if k[0] == learnerID {
			out[k[1]] = v
		}
	}
	return out, nil
}

func (m *memStore) Upsert(_ context.Context, learnerID, conceptID int, st elo.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skills[[2]int{learnerID, conceptID}] = st
	return nil
}

// --- AttemptRepo ---

func (m *memStore) RecentEnriched(_ context.Context, learnerID, limit int) ([]store.EnrichedAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.EnrichedAttempt
	for i := len(m.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if m.attempts[i].LearnerID == learnerID {
			out = append(out, m.attempts[i])
		}
	}
	return out, nil
}

func (m *memStore) RecentForConcept(_ context.Context, learnerID, conceptID, limit int) ([]store.EnrichedAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.EnrichedAttempt
	for i := len(m.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if m.attempts[i].LearnerID == learnerID && m.attempts[i].ConceptID == conceptID {
			out = append(out, m.attempts[i])
		}
	}
	return out, nil
}

func (m *memStore) CorrectTexts(_ context.Context, learnerID int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, a := range m.attempts {
		if a.LearnerID == learnerID && a.IsCorrect {
			out = append(out, itemgen.NormalizeText(a.Content))
		}
	}
	return out, nil
}

func (m *memStore) ForSession(_ context.Context, sessionID string) ([]store.EnrichedAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.EnrichedAttempt
	for _, a := range m.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- AttemptRecorder ---

func (m *memStore) RecordAttempt(_ context.Context, rec store.AttemptRecord, newState elo.State) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTx {
		return 0, fmt.Errorf("simulated transaction failure")
	}

	id := m.id()
	ea := store.EnrichedAttempt{
		ID:           id,
		ItemID:       rec.ItemID,
		LearnerID:    rec.LearnerID,
		SessionID:    rec.SessionID,
		ConceptID:    rec.ConceptID,
		AnswerGiven:  rec.AnswerGiven,
		IsCorrect:    rec.IsCorrect,
		PartialScore: rec.PartialScore,
		RatingBefore: rec.RatingBefore,
		RatingAfter:  rec.RatingAfter,
		Timestamp:    time.Now(),
	}
	if it, ok := m.items[rec.ItemID]; ok {
		ea.Content = it.Content
		ea.CorrectAnswer = it.CorrectAnswer
		ea.Difficulty = it.Difficulty
		ea.ItemType = string(it.Type)
	}
	m.attempts = append(m.attempts, ea)
	m.skills[[2]int{rec.LearnerID, rec.ConceptID}] = newState
	m.history++
	m.txRecords++
	return id, nil
}

// --- ItemRepo ---

func (m *memStore) Insert(_ context.Context, item *itemgen.Item) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.id()
	copied := *item
	m.items[item.ID] = &copied
	return item.ID, nil
}

func (m *memStore) ItemByID(_ context.Context, id int) (*itemgen.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.items[id]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, fmt.Errorf("item %d not found", id)
}

func (m *memStore) MarkRejected(context.Context, int, string) error { return nil }

// --- SessionRepo ---

func (m *memStore) CreateSession(_ context.Context, learnerID, topicID int) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &store.Session{
		ID:        fmt.Sprintf("sess-%d", m.id()),
		LearnerID: learnerID,
		TopicID:   topicID,
		StartedAt: time.Now(),
	}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memStore) SessionByID(_ context.Context, id string) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (m *memStore) SetCurrent(_ context.Context, sessionID string, itemID int, lastResult map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s not found", sessionID)
	}
	s.CurrentItemID = itemID
	if lastResult != nil {
		s.LastResult = lastResult
	}
	return nil
}

func (m *memStore) End(_ context.Context, sessionID string) (*store.SessionTotals, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	now := time.Now()
	s.EndedAt = &now
	totals := &store.SessionTotals{}
	for _, a := range m.attempts {
		if a.SessionID == sessionID {
			totals.Total++
			if a.IsCorrect {
				totals.Correct++
			}
		}
	}
	if totals.Total > 0 {
		totals.Accuracy = float64(totals.Correct) / float64(totals.Total)
	}
	return totals, nil
}

// repoViews adapts memStore to the Repos bundle. Separate adapter structs
// resolve the method-name collisions between repo interfaces.
type itemRepoView struct{ *memStore }

func (v itemRepoView) ByID(ctx context.Context, id int) (*itemgen.Item, error) {
	return v.ItemByID(ctx, id)
}

type sessionRepoView struct{ *memStore }

func (v sessionRepoView) Create(ctx context.Context, learnerID, topicID int) (*store.Session, error) {
	return v.CreateSession(ctx, learnerID, topicID)
}

func (v sessionRepoView) ByID(ctx context.Context, id string) (*store.Session, error) {
	return v.SessionByID(ctx, id)
}

func (v sessionRepoView) RecentForLearner(_ context.Context, learnerID, limit int) ([]*store.Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []*store.Session
	for _, s := range v.sessions {
		if s.LearnerID == learnerID && len(out) < limit {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func reposFor(m *memStore) Repos {
	return Repos{
		Learners: m,
		Concepts: m,
		Skills:   m,
		Attempts: m,
		Recorder: m,
		Items:    itemRepoView{m},
		Sessions: sessionRepoView{m},
	}
}

// fakeGenerator produces sequential arithmetic items, skipping texts the
// dedup registry rejects.
type fakeGenerator struct {
	mu    sync.Mutex
	n     int
	calls int
}

func (g *fakeGenerator) Generate(_ context.Context, input itemgen.GenerateInput, dedup *itemgen.DedupRegistry) (*itemgen.Item, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	for i := 0; i < 100; i++ {
		g.n++
		content := fmt.Sprintf("What is %d + %d?", g.n, g.n+1)
		if dedup.IsDuplicate(content) {
			continue
		}
		return &itemgen.Item{
			ConceptID:     input.Concept.ID,
			Content:       content,
			Type:          itemgen.TypeShortAnswer,
			CorrectAnswer: fmt.Sprintf("%d", 2*g.n+1),
			Difficulty:    input.TargetDifficulty,
		}, nil
	}
	return nil, itemgen.ErrNoItem
}

// fakeGrader grades numerically without an LLM.
type fakeGrader struct{}

func (fakeGrader) Grade(_ context.Context, item *itemgen.Item, answer string) (grader.Result, error) {
	correct, close := grader.CheckAnswer(answer, item.CorrectAnswer, item.Type, item.Options)
	res := grader.Result{IsCorrect: correct, IsClose: close}
	if correct {
		res.PartialScore = 1.0
	}
	return res, nil
}

func (fakeGrader) Explain(_ context.Context, item *itemgen.Item, _ string) grader.Explanation {
	return grader.Explanation{Encouragement: "Keep going!", Explanation: "The correct answer was: " + item.CorrectAnswer}
}
