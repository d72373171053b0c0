package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/llm"
	"github.com/abhisek/fracdiv/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		reqs, err := s.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}
		if len(reqs) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range reqs {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Purpose,
				truncate(r.Model, 28),
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "Show the full request and response of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var seq int64
		if _, err := fmt.Sscanf(args[0], "%d", &seq); err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		reqs, err := s.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{After: seq - 1, Before: seq + 1})
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}
		if len(reqs) == 0 {
			return fmt.Errorf("LLM request %d not found", seq)
		}
		r := reqs[0]

		fmt.Printf("Seq:       %d\n", r.Sequence)
		fmt.Printf("Time:      %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", r.Provider)
		fmt.Printf("Model:     %s\n", r.Model)
		fmt.Printf("Purpose:   %s\n", r.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", r.InputTokens, r.OutputTokens)
		fmt.Printf("Latency:   %dms\n", r.LatencyMs)
		fmt.Printf("Cost:      %s\n", formatCost(r.CostUSD))
		if r.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", r.ErrorMessage)
		}

		sep := strings.Repeat("─", 60)
		for _, part := range []struct{ name, body string }{
			{"REQUEST", r.RequestBody},
			{"RESPONSE", r.ResponseBody},
		} {
			fmt.Printf("\n%s\n%s\n%s\n", sep, part.name, sep)
			if part.body == "" {
				fmt.Println("(not captured)")
				continue
			}
			fmt.Println(part.body)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().LLMUsageStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Printf("%-10s  %-28s  %-10s  %5s  %5s  %8s  %8s  %7s  %9s\n",
			"Provider", "Model", "Purpose", "Calls", "Fails", "Input", "Output", "Avg Ms", "Cost")
		fmt.Println(strings.Repeat("─", 106))

		var calls, in, out int
		var cost float64
		var unpriced []string
		for _, u := range stats {
			c := u.CostUSD
			if c == 0 {
				// Older rows may predate pricing; fall back to the table.
				if mc := llm.LookupCost(u.Model); mc != nil {
					c = mc.Cost(u.InputTokens, u.OutputTokens)
				} else {
					unpriced = append(unpriced, u.Model)
				}
			}
			fmt.Printf("%-10s  %-28s  %-10s  %5d  %5d  %8d  %8d  %7d  %9s\n",
				u.Provider, truncate(u.Model, 28), u.Purpose, u.Requests, u.Failures,
				u.InputTokens, u.OutputTokens, u.AvgLatencyMs, formatCost(c))
			calls += u.Requests
			in += u.InputTokens
			out += u.OutputTokens
			cost += c
		}

		fmt.Println(strings.Repeat("─", 106))
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-52s  %5d  %5s  %8d  %8d  %7s  %9s\n", label, calls, "", in, out, "", formatCost(cost))
		if len(unpriced) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. lesson, diagnosis)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
