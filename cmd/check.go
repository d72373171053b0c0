package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/lessons"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

var checkCmd = &cobra.Command{
	Use:   `check "<a/b ÷ c/d>" <answer>`,
	Short: "Check an answer and show the worked solution",
	Example: `  fracdiv check "3/4 ÷ 3/8" 2
  fracdiv check "2/3 ÷ 4/5" "8/15"`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := problemgen.ParseProblem(args[0])
	if err != nil {
		return err
	}
	answer := strings.TrimSpace(args[1])
	given, err := fraction.Parse(answer)
	if err != nil {
		return fmt.Errorf("answer %q: %w", answer, err)
	}

	fmt.Println(p.Text())
	if problemgen.CheckAnswer(given.Num, given.Den, p.Quotient) {
		fmt.Printf("\033[32m✓ Correct!\033[0m %s = %s\n", p.Text(), p.Quotient)
	} else {
		fmt.Printf("\033[31m✗ Not quite.\033[0m The answer is %s.\n", p.Quotient)
		if line := explainMistake(cmd, &p, answer); line != "" {
			fmt.Println(line)
		}
	}

	fmt.Println()
	fmt.Print(lessons.FormatSteps(lessons.WorkedSolution(p)))
	return nil
}

// explainMistake runs the rule-based classifiers on a wrong answer. Timing
// and accuracy are unknown here, so only answer-shape rules can match.
func explainMistake(cmd *cobra.Command, p *problemgen.Problem, answer string) string {
	svc := diagnosis.NewService(nil)
	defer svc.Close()

	return diagnosis.Explain(svc.Diagnose(cmd.Context(), diagnosis.Request{Problem: p, LearnerAnswer: answer}, nil))
}
