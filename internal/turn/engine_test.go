package turn

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmalhotra/drill/internal/config"
	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/itemgen"
)

func threeConceptTopic() []curriculum.Concept {
	return []curriculum.Concept{
		{ID: 1, TopicID: 1, Name: "c1", OrderIndex: 0},
		{ID: 2, TopicID: 1, Name: "c2", OrderIndex: 1, Prerequisites: []int{1}},
		{ID: 3, TopicID: 1, Name: "c3", OrderIndex: 2, Prerequisites: []int{2}},
	}
}

func newTestEngine(t *testing.T) (*Engine, *memStore, *fakeGenerator) {
	t.Helper()
	m := newMemStore(threeConceptTopic())
	gen := &fakeGenerator{}
	e := NewEngine(reposFor(m), gen, fakeGrader{}, config.Default())
	// Keep tests deterministic; speculation has its own tests below.
	e.DisablePrecache()
	return e, m, gen
}

func TestColdStartScenario(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, err := m.CreateOrGet(ctx, "alice")
	require.NoError(t, err)

	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 1, item.ConceptID, "first item targets the first concept")

	res, err := e.Submit(ctx, sess.ID, item.CorrectAnswer, 4.2)
	require.NoError(t, err)
	assert.True(t, res.IsCorrect)
	assert.Greater(t, res.RatingAfter, 800.0)
	assert.Less(t, res.Mastery, 0.75, "one correct answer must not master the concept")

	st, err := m.Get(ctx, alice.ID, 1)
	require.NoError(t, err)
	assert.InDelta(t, 315.0, st.Uncertainty, 1e-9, "uncertainty decays 350 -> 315")
	assert.Equal(t, 1, st.TotalAttempts)

	next, err := e.Next(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 1, next.ConceptID, "policy stays on c1 after a single attempt")
}

func TestSubmit_AppendOnlyAttemptAndHistory(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	before := m.txRecords
	_, err = e.Submit(ctx, sess.ID, item.CorrectAnswer, 1)
	require.NoError(t, err)
	assert.Equal(t, before+1, m.txRecords, "exactly one transactional record per submit")
	assert.Equal(t, m.history, m.txRecords, "one history snapshot per attempt")
}

func TestSubmit_TransactionFailureLeavesStateUntouched(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	m.failTx = true
	_, err = e.Submit(ctx, sess.ID, item.CorrectAnswer, 1)
	require.Error(t, err)

	st, _ := m.Get(ctx, alice.ID, 1)
	assert.Equal(t, 800.0, st.Rating, "skill state must not mutate on tx failure")
	assert.Empty(t, m.attempts, "no attempt recorded on tx failure")
}

func TestSubmit_WrongAnswerLowersRatingAndExplains(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	res, err := e.Submit(ctx, sess.ID, "999999", 2)
	require.NoError(t, err)
	assert.False(t, res.IsCorrect)
	assert.Less(t, res.RatingAfter, res.RatingBefore)
	require.NotNil(t, res.Explanation)
	assert.Equal(t, "Keep going!", res.Explanation.Encouragement)
	_ = item
}

func TestDedup_LifetimeCorrectNeverRepeats(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, first, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	seen := map[string]int{itemgen.NormalizeText(first.Content): 1}
	item := first
	for i := 0; i < 10; i++ {
		_, err := e.Submit(ctx, sess.ID, item.CorrectAnswer, 1)
		require.NoError(t, err)

		item, err = e.Next(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, item)

		norm := itemgen.NormalizeText(item.Content)
		seen[norm]++
		assert.Equal(t, 1, seen[norm], "question %q repeated", item.Content)
	}
}

func TestNext_FallsBackToSyncGenerationOnPrecacheMiss(t *testing.T) {
	e, m, gen := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	// Grade without triggering any precache fill (entries map stays empty).
	_, err = e.Submit(ctx, sess.ID, item.CorrectAnswer, 1)
	require.NoError(t, err)

	callsBefore := gen.calls
	next, err := e.Next(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Greater(t, gen.calls, callsBefore, "miss must fall through to synchronous generation")
}

func TestPrecache_PopSemantics(t *testing.T) {
	p := newPrecache()
	item1 := &itemgen.Item{ID: 11, ConceptID: 1}
	item2 := &itemgen.Item{ID: 12, ConceptID: 1}

	p.put(1, "s", branchCorrect, 1, item1)
	p.put(1, "s", branchWrong, 1, item2)

	// Matching branch and concept: hit, and both entries cleared.
	hit, missed := p.pop(1, "s", branchCorrect, 1)
	assert.False(t, missed)
	assert.Equal(t, item1, hit)
	assert.Equal(t, 0, p.len(), "pop clears both branches")

	// Concept mismatch: both entries exist for c1 but the focus moved to
	// c99; everything is discarded.
	p.put(1, "s", branchCorrect, 1, item1)
	p.put(1, "s", branchWrong, 1, item2)
	hit, missed = p.pop(1, "s", branchWrong, 99)
	assert.True(t, missed)
	assert.Nil(t, hit)
	assert.Equal(t, 0, p.len())
}

func TestPrecacheBranch_PopulatesBothOutcomes(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	// Run both speculative branches synchronously.
	e.precacheBranch(ctx, sess, item, branchCorrect)
	e.precacheBranch(ctx, sess, item, branchWrong)
	assert.Equal(t, 2, e.precache.len())

	// The learner answers correctly: the correct branch is consumed.
	_, err = e.Submit(ctx, sess.ID, item.CorrectAnswer, 1)
	require.NoError(t, err)

	next, err := e.Next(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, 0, e.precache.len(), "both entries consumed or discarded")
}

func TestEnd_ComputesTotals(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	_, err = e.Submit(ctx, sess.ID, item.CorrectAnswer, 1)
	require.NoError(t, err)
	item, err = e.Next(ctx, sess.ID)
	require.NoError(t, err)
	_, err = e.Submit(ctx, sess.ID, "wrong-answer", 1)
	require.NoError(t, err)

	totals, err := e.End(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Total)
	assert.Equal(t, 1, totals.Correct)
	assert.InDelta(t, 0.5, totals.Accuracy, 1e-9)
}

func TestRatingDeltaDirection(t *testing.T) {
	e, m, _ := newTestEngine(t)
	ctx := context.Background()

	alice, _ := m.CreateOrGet(ctx, "bob")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)

	res, err := e.Submit(ctx, sess.ID, item.CorrectAnswer, 1)
	require.NoError(t, err)
	if math.Signbit(res.RatingAfter - res.RatingBefore) {
		t.Errorf("correct answer decreased rating: %v -> %v", res.RatingBefore, res.RatingAfter)
	}
}

func TestSubmit_UnknownSession(t *testing.T) {
	e, _, _ := newTestEngine(t)
	_, err := e.Submit(context.Background(), "no-such-session", "8", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStart_GenerationExhaustedReturnsNilItem(t *testing.T) {
	m := newMemStore([]curriculum.Concept{
		// Only a visual-bound concept: the policy has nothing to serve.
		{ID: 1, TopicID: 1, Name: "Reading a bar graph", OrderIndex: 0, VisualRequired: true},
	})
	e := NewEngine(reposFor(m), &fakeGenerator{}, fakeGrader{}, config.Default())

	ctx := context.Background()
	alice, _ := m.CreateOrGet(ctx, "alice")
	sess, item, err := e.Start(ctx, alice.ID, 1)
	require.NoError(t, err)
	assert.NotNil(t, sess)
	assert.Nil(t, item, "no generable concept yields no item, not an error")
}

// Guards against fake drift: the generator must produce answers its items
// accept, or every test above would silently exercise the wrong path.
func TestFakeGeneratorConsistency(t *testing.T) {
	gen := &fakeGenerator{}
	dedup := itemgen.NewDedupRegistry(nil)
	item, err := gen.Generate(context.Background(), itemgen.GenerateInput{
		Concept: curriculum.Concept{ID: 1},
	}, dedup)
	require.NoError(t, err)

	var a, b int
	_, err = fmt.Sscanf(item.Content, "What is %d + %d?", &a, &b)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d", a+b), item.CorrectAnswer)
}
