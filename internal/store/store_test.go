package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/elo"
	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/llm"
)

var testDBSeq int

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A unique shared-cache name per test keeps in-memory databases
	// isolated while surviving multiple connections.
	testDBSeq++
	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", testDBSeq)
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTestTopic(t *testing.T, s *Store) (topicID int, concepts []curriculum.Concept) {
	t.Helper()
	ctx := context.Background()
	topic, cs, prereqs := curriculum.StarterConcepts()
	topicID, err := s.Concepts().SeedTopic(ctx, topic, cs, prereqs)
	if err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	concepts, err = s.Concepts().ListByTopic(ctx, topicID)
	if err != nil {
		t.Fatalf("list concepts: %v", err)
	}
	return topicID, concepts
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestLearnerCreateOrGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a, err := s.Learners().CreateOrGet(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Learners().CreateOrGet(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != b.ID {
		t.Errorf("CreateOrGet created a second row: %d vs %d", a.ID, b.ID)
	}

	if _, err := s.Learners().CreateOrGet(ctx, ""); err == nil {
		t.Error("empty name accepted")
	}
}

func TestSeedTopic_IdempotentAndOrdered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	topicID, concepts := seedTestTopic(t, s)
	if len(concepts) == 0 {
		t.Fatal("no concepts seeded")
	}
	for i := 1; i < len(concepts); i++ {
		if concepts[i].OrderIndex < concepts[i-1].OrderIndex {
			t.Errorf("concepts not ordered by order_index at %d", i)
		}
	}

	// The prerequisite graph must reference real IDs and stay acyclic.
	if err := curriculum.Validate(concepts); err != nil {
		t.Errorf("seeded curriculum invalid: %v", err)
	}

	again, err := s.Concepts().SeedTopic(ctx, curriculum.Topic{Name: curriculum.StarterTopicName}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if again != topicID {
		t.Errorf("second seed created a new topic: %d vs %d", again, topicID)
	}
}

func TestSkillState_DefaultWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st, err := s.Skills().Get(ctx, 1, 999)
	if err != nil {
		t.Fatal(err)
	}
	if st.Rating != 800.0 || st.Uncertainty != 350.0 || st.TotalAttempts != 0 {
		t.Errorf("absent row should read as defaults, got %+v", st)
	}
}

func TestSkillState_UpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := elo.State{Rating: 910.5, Uncertainty: 283.5, Mastery: 0.41, TotalAttempts: 3, CorrectAttempts: 2}
	if err := s.Skills().Upsert(ctx, 1, 2, st); err != nil {
		t.Fatal(err)
	}

	got, err := s.Skills().Get(ctx, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.Rating != st.Rating || got.TotalAttempts != 3 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	st.Rating = 950.0
	st.TotalAttempts = 4
	if err := s.Skills().Upsert(ctx, 1, 2, st); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Skills().Get(ctx, 1, 2)
	if got.Rating != 950.0 || got.TotalAttempts != 4 {
		t.Errorf("update mismatch: %+v", got)
	}

	all, err := s.Skills().ListForLearner(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("ListForLearner = %d rows, want 1", len(all))
	}
}

func TestRecordAttempt_Transactional(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	learner, err := s.Learners().CreateOrGet(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	_, concepts := seedTestTopic(t, s)
	conceptID := concepts[0].ID

	itemID, err := s.Items().Insert(ctx, &itemgen.Item{
		ConceptID:     conceptID,
		Content:       "What is 5 + 3?",
		Type:          itemgen.TypeShortAnswer,
		CorrectAnswer: "8",
		Difficulty:    559.2,
		EstimatedP:    0.8,
	})
	if err != nil {
		t.Fatal(err)
	}

	newState := elo.State{Rating: 851.2, Uncertainty: 315, Mastery: 0.5, TotalAttempts: 1, CorrectAttempts: 1}
	attemptID, err := s.Recorder().RecordAttempt(ctx, AttemptRecord{
		ItemID:       itemID,
		LearnerID:    learner.ID,
		ConceptID:    conceptID,
		AnswerGiven:  "8",
		IsCorrect:    true,
		PartialScore: 1.0,
		RatingBefore: 800,
		RatingAfter:  851.2,
	}, newState)
	if err != nil {
		t.Fatal(err)
	}
	if attemptID == 0 {
		t.Fatal("no attempt id returned")
	}

	// The skill state was written in the same transaction.
	st, err := s.Skills().Get(ctx, learner.ID, conceptID)
	if err != nil {
		t.Fatal(err)
	}
	if st.Rating != 851.2 || st.TotalAttempts != 1 {
		t.Errorf("skill state not updated: %+v", st)
	}

	// And the attempt shows up enriched with item fields.
	recent, err := s.Attempts().RecentEnriched(ctx, learner.ID, 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 {
		t.Fatalf("recent attempts = %d, want 1", len(recent))
	}
	if recent[0].Content != "What is 5 + 3?" || recent[0].ConceptID != conceptID {
		t.Errorf("enrichment missing: %+v", recent[0])
	}

	texts, err := s.Attempts().CorrectTexts(ctx, learner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(texts) != 1 || texts[0] != "what is 5 + 3?" {
		t.Errorf("correct texts = %v", texts)
	}
}

func TestItem_VisualRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Items().Insert(ctx, &itemgen.Item{
		ConceptID:     1,
		Content:       "What time does this clock show? [3:00]",
		Type:          itemgen.TypeMCQ,
		Options:       []string{"A) 3:00", "B) 4:00", "C) 5:00", "D) 6:00"},
		CorrectAnswer: "A",
		Difficulty:    550,
		Visual: &itemgen.VisualSpec{
			Kind:   "clock",
			Params: map[string]float64{"hour": 3, "minute": 0},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Items().ByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Visual == nil || got.Visual.Kind != "clock" || got.Visual.Params["hour"] != 3 {
		t.Errorf("visual spec lost: %+v", got.Visual)
	}
	if len(got.Options) != 4 {
		t.Errorf("options lost: %v", got.Options)
	}
}

func TestSession_Lifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	learner, _ := s.Learners().CreateOrGet(ctx, "alice")
	sess, err := s.Sessions().Create(ctx, learner.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if sess.ID == "" {
		t.Fatal("empty session id")
	}
	if sess.EndedAt != nil {
		t.Error("new session already ended")
	}

	if err := s.Sessions().SetCurrent(ctx, sess.ID, 7, map[string]any{"is_correct": true}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Sessions().ByID(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentItemID != 7 {
		t.Errorf("current item = %d, want 7", got.CurrentItemID)
	}
	if v, ok := got.LastResult["is_correct"].(bool); !ok || !v {
		t.Errorf("last result lost: %v", got.LastResult)
	}

	totals, err := s.Sessions().End(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if totals.Total != 0 {
		t.Errorf("totals = %+v, want empty", totals)
	}
	got, _ = s.Sessions().ByID(ctx, sess.ID)
	if got.EndedAt == nil {
		t.Error("session not marked ended")
	}

	missing, err := s.Sessions().ByID(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("missing session = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestItemReports(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Items().Insert(ctx, &itemgen.Item{
		ConceptID:     1,
		Content:       "What is 5 + 3?",
		Type:          itemgen.TypeShortAnswer,
		CorrectAnswer: "9",
		Difficulty:    550,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Reports().Insert(ctx, ItemReport{ItemID: id, Reason: "wrong answer", Details: "5+3 is 8"}); err != nil {
		t.Fatal(err)
	}
	reports, err := s.Reports().ListByItem(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Reason != "wrong answer" {
		t.Errorf("reports = %+v", reports)
	}

	if err := s.Items().MarkRejected(ctx, id, "math verification failed"); err != nil {
		t.Fatal(err)
	}
}

func TestEventRepo_AppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, llm.RequestEvent{
		Provider:     "ollama",
		Model:        "qwen3:8b",
		Purpose:      "item-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    5400,
		Success:      true,
	})
	if err != nil {
		t.Fatal(err)
	}
}
