package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmalhotra/drill/internal/config"
	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/grader"
	"github.com/nmalhotra/drill/internal/itemgen"
	"github.com/nmalhotra/drill/internal/llm"
	"github.com/nmalhotra/drill/internal/store"
	"github.com/nmalhotra/drill/internal/turn"
)

// buildEngine opens the store, builds the LLM provider and the turn
// engine. The caller must Close the returned store.
func buildEngine(cmd *cobra.Command) (*turn.Engine, *store.Store, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pipeline := itemgen.NewPipeline(provider, cfg, rng)
	answerGrader := grader.New(provider)

	engine := turn.NewEngine(turn.Repos{
		Learners: st.Learners(),
		Concepts: st.Concepts(),
		Skills:   st.Skills(),
		Attempts: st.Attempts(),
		Recorder: st.Recorder(),
		Items:    st.Items(),
		Sessions: st.Sessions(),
	}, pipeline, answerGrader, cfg)

	return engine, st, nil
}

// resolveLearnerAndTopic looks up (creating if needed) the learner and
// resolves the topic, seeding the starter curriculum on first run.
func resolveLearnerAndTopic(ctx context.Context, cmd *cobra.Command, st *store.Store) (*store.Learner, *curriculum.Topic, error) {
	name, _ := cmd.Flags().GetString("learner")
	learner, err := st.Learners().CreateOrGet(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	topicName, _ := cmd.Flags().GetString("topic")
	if topicName != "" {
		topic, err := st.Concepts().TopicByName(ctx, topicName)
		if err != nil {
			return nil, nil, err
		}
		if topic == nil {
			return nil, nil, fmt.Errorf("topic %q not found; run `drill seed` or check the name", topicName)
		}
		return learner, topic, nil
	}

	topics, err := st.Concepts().ListTopics(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(topics) == 0 {
		// First run: install the starter curriculum.
		t, concepts, prereqs := curriculum.StarterConcepts()
		if _, err := st.Concepts().SeedTopic(ctx, t, concepts, prereqs); err != nil {
			return nil, nil, fmt.Errorf("seed starter topic: %w", err)
		}
		topics, err = st.Concepts().ListTopics(ctx)
		if err != nil {
			return nil, nil, err
		}
	}
	return learner, &topics[0], nil
}
