package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated problems (no database)",
	Long: `Generate fraction division problems.

With --batch, non-exact problems are drawn as one practice round: the
problems are distinct and repeated answers are rare.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("difficulty", "d", "non-exact", "Difficulty: exact or non-exact")
	generateCmd.Flags().IntP("count", "n", 5, "Number of problems")
	generateCmd.Flags().Uint64("seed", 0, "Seed for a repeatable sequence (0 = FRACDIV_SEED or random)")
	generateCmd.Flags().Bool("json", false, "Print JSON lines instead of text")
	generateCmd.Flags().Bool("batch", false, "Draw the problems as one distinct practice batch")
}

// generatedProblem is the JSON shape of one problem.
type generatedProblem struct {
	Problem    string `json:"problem"`
	Dividend   string `json:"dividend"`
	Divisor    string `json:"divisor"`
	Quotient   string `json:"quotient"`
	Difficulty string `json:"difficulty"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	asJSON, _ := cmd.Flags().GetBool("json")
	batch, _ := cmd.Flags().GetBool("batch")

	diff, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	if seed == 0 {
		seed = cfg.Practice.Seed
	}

	gen := problemgen.New(cfg.Practice.GeneratorConfig(), seededRand(seed))
	problems := generateProblems(gen, diff, count, batch)
	log := logger(cmd)
	log.Debug().Str("difficulty", string(diff)).Int("count", len(problems)).Uint64("seed", seed).Msg("generated problems")

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		for _, p := range problems {
			if err := enc.Encode(generatedProblem{
				Problem:    p.Text(),
				Dividend:   p.Dividend.String(),
				Divisor:    p.Divisor.String(),
				Quotient:   p.Quotient.String(),
				Difficulty: string(p.Difficulty),
			}); err != nil {
				return fmt.Errorf("encode problem: %w", err)
			}
		}
		return nil
	}

	for i, p := range problems {
		fmt.Printf("%3d.  %-14s = %s\n", i+1, p.Text(), p.Quotient)
	}
	return nil
}

func generateProblems(gen *problemgen.Generator, diff problemgen.Difficulty, count int, batch bool) []problemgen.Problem {
	switch {
	case diff == problemgen.Exact:
		// Exact problems are always drawn as one distinct batch.
		return gen.ExactBatch(count)
	case batch:
		first := gen.NonExact()
		return append([]problemgen.Problem{first}, gen.DistinctBatch(first, count-1)...)
	}
	out := make([]problemgen.Problem, 0, count)
	for range count {
		out = append(out, gen.Generate(diff))
	}
	return out
}
