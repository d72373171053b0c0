package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		if sessionID != "" {
			return printAnswers(cmd, s.EventRepo(), sessionID)
		}

		sessions, err := s.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No lessons recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-9s  %6s  %7s  %5s  %s\n",
			"Session", "Ended", "Stage", "Served", "Correct", "Acc", "Time")
		fmt.Println(strings.Repeat("─", 100))
		for _, ss := range sessions {
			fmt.Printf("%-36s  %-16s  %-9s  %6d  %7d  %4.0f%%  %ds\n",
				ss.SessionID,
				ss.EndedAt.Local().Format("2006-01-02 15:04"),
				ss.Stage,
				ss.ProblemsServed,
				ss.CorrectAnswers,
				ss.Accuracy()*100,
				ss.DurationSecs,
			)
		}

		p, err := store.LoadProgress(ctx, s.SnapshotRepo())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		fmt.Printf("\n%d lessons, %d completed, %.0f%% correct overall, best streak %d\n",
			p.Sessions, p.CompletedLessons, p.Accuracy()*100, p.BestStreak)
		return nil
	},
}

func printAnswers(cmd *cobra.Command, repo store.EventRepo, sessionID string) error {
	answers, err := repo.QueryAnswers(cmd.Context(), sessionID)
	if err != nil {
		return fmt.Errorf("query answers: %w", err)
	}
	if len(answers) == 0 {
		fmt.Printf("No answers recorded for session %s.\n", sessionID)
		return nil
	}
	for _, a := range answers {
		mark := "✗"
		if a.Correct {
			mark = "✓"
		}
		fmt.Printf("%-9s  %-14s  %-8s  try %d  %s\n", a.Stage, a.ProblemText, a.LearnerAnswer, a.Attempt, mark)
	}
	return nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	historyCmd.Flags().String("session", "", "Show the answers of one session")
}
