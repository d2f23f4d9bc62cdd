package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmalhotra/drill/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session (TUI)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	engine, st, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	learner, topic, err := resolveLearnerAndTopic(ctx, cmd, st)
	if err != nil {
		return err
	}

	sess, first, err := engine.Start(ctx, learner.ID, topic.ID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	return app.Run(app.Options{
		Engine:  engine,
		Learner: learner,
		Session: sess,
		First:   first,
	})
}
