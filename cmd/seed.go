package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmalhotra/drill/internal/curriculum"
	"github.com/nmalhotra/drill/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the built-in starter curriculum",
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
		topic, concepts, prereqs := curriculum.StarterConcepts()
		topicID, err := st.Concepts().SeedTopic(ctx, topic, concepts, prereqs)
		if err != nil {
			return fmt.Errorf("seed topic: %w", err)
		}

		seeded, err := st.Concepts().ListByTopic(ctx, topicID)
		if err != nil {
			return err
		}
		if err := curriculum.Validate(seeded); err != nil {
			return fmt.Errorf("seeded curriculum failed validation: %w", err)
		}

		fmt.Printf("Seeded topic %q with %d concepts.\n", topic.Name, len(seeded))
		return nil
	},
}
