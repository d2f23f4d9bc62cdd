package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmalhotra/drill/internal/itemgen"
)

// runCmd is the plain line-mode session loop. Useful over SSH and for
// scripting; the TUI in `drill play` is the nicer surface.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a practice session (line mode)",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		sess, item, err := engine.Start(ctx, learner.ID, topic.ID)
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		fmt.Printf("Session started for %s on %q. Type 'end' to finish.\n\n", learner.Name, topic.Name)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if item == nil {
				fmt.Println("Couldn't come up with a good question. Trying again...")
				item, err = engine.Next(ctx, sess.ID)
				if err != nil {
					return err
				}
				if item == nil {
					break
				}
			}

			printItem(item)
			fmt.Print("> ")
			started := time.Now()
			if !scanner.Scan() {
				break
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == "end" {
				break
			}
			if answer == "" {
				continue
			}

			result, err := engine.Submit(ctx, sess.ID, answer, time.Since(started).Seconds())
			if err != nil {
				return fmt.Errorf("submit answer: %w", err)
			}

			if result.IsCorrect {
				fmt.Printf("Correct! rating %.1f -> %.1f\n\n", result.RatingBefore, result.RatingAfter)
			} else {
				if result.IsClose {
					fmt.Println("So close!")
				}
				fmt.Printf("Not quite. The answer was: %s\n", result.CorrectAnswer)
				if result.Explanation != nil {
					fmt.Println(result.Explanation.Encouragement)
					fmt.Println(result.Explanation.Explanation)
				}
				fmt.Println()
			}

			item, err = engine.Next(ctx, sess.ID)
			if err != nil {
				return err
			}
		}

		totals, err := engine.End(ctx, sess.ID)
		if err != nil {
			return err
		}
		fmt.Printf("\nSession over: %d/%d correct (%.0f%%).\n", totals.Correct, totals.Total, totals.Accuracy*100)
		return nil
	},
}

func printItem(item *itemgen.Item) {
	fmt.Println(item.Content)
	if item.Type == itemgen.TypeMCQ {
		for _, o := range item.Options {
			fmt.Println("  " + o)
		}
	}
}
