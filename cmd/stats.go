package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmalhotra/drill/internal/llm"
	"github.com/nmalhotra/drill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		name, _ := cmd.Flags().GetString("learner")
		learner, err := st.Learners().CreateOrGet(ctx, name)
		if err != nil {
			return err
		}

		topics, err := st.Concepts().ListTopics(ctx)
		if err != nil {
			return err
		}
		skills, err := st.Skills().ListForLearner(ctx, learner.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Learner: %s\n\n", learner.Name)
		for _, topic := range topics {
			concepts, err := st.Concepts().ListByTopic(ctx, topic.ID)
			if err != nil {
				return err
			}
			fmt.Println(topic.Name)
			fmt.Printf("  %-32s  %-8s  %-8s  %-9s  %s\n", "Concept", "Rating", "Mastery", "Attempts", "Accuracy")
			fmt.Println("  " + strings.Repeat("-", 74))
			for _, c := range concepts {
				stt, ok := skills[c.ID]
				if !ok {
					fmt.Printf("  %-32s  %-8s  %-8s  %-9s  %s\n", truncate(c.Name, 32), "800.0", "0%", "0", "-")
					continue
				}
				acc := "-"
				if stt.TotalAttempts > 0 {
					acc = fmt.Sprintf("%.0f%%", stt.Accuracy()*100)
				}
				fmt.Printf("  %-32s  %-8.1f  %-8s  %-9d  %s\n",
					truncate(c.Name, 32), stt.Rating,
					fmt.Sprintf("%.0f%%", stt.Mastery*100),
					stt.TotalAttempts, acc)
			}
			fmt.Println()
		}

		sessions, err := st.Sessions().RecentForLearner(ctx, learner.ID, 5)
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			fmt.Println("Recent sessions")
			for _, sess := range sessions {
				status := "active"
				if sess.EndedAt != nil {
					status = fmt.Sprintf("%d/%d correct", sess.TotalCorrect, sess.TotalQuestions)
				}
				fmt.Printf("  %s  %s\n", sess.StartedAt.Local().Format("2006-01-02 15:04"), status)
			}
			fmt.Println()
		}

		return printLLMUsage(ctx, st)
	},
}

// printLLMUsage summarizes token counts and cost from the event log.
func printLLMUsage(ctx context.Context, st *store.Store) error {
	events, err := st.Events().QueryLLMEvents(ctx, 0)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	var in, out int
	var cost float64
	costKnown := true
	for _, e := range events {
		in += e.InputTokens
		out += e.OutputTokens
		if c := llm.LookupCost(e.Model); c != nil {
			cost += c.Cost(e.InputTokens, e.OutputTokens)
		} else {
			costKnown = false
		}
	}

	fmt.Printf("LLM usage: %d requests, %d in / %d out tokens", len(events), in, out)
	if costKnown {
		fmt.Printf(", ~$%.4f", cost)
	}
	fmt.Println()
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
