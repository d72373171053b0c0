package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/lessons"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run a lesson in plain line mode (no TUI, no database)",
	Long: `Walk through a whole lesson on stdin/stdout.

Type an answer and press Enter. "?" shows a hint and "q" quits. Nothing is
recorded, which makes this handy for trying out problem settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		if seed == 0 {
			seed = cfg.Practice.Seed
		}
		gen := problemgen.New(cfg.Practice.GeneratorConfig(), seededRand(seed))

		diag := diagnosis.NewService(nil)
		defer diag.Close()

		sess := session.New(cmd.Context(), session.Options{
			Planner:   session.NewPlanner(gen, cfg.Practice.ExactCount, cfg.Practice.PracticeCount),
			Diagnosis: diag,
		})
		return runPreview(sess, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	previewCmd.Flags().Uint64("seed", 0, "Seed for a repeatable problem sequence (0 = random)")
}

// runPreview drives sess from line input until the lesson is complete or
// the input ends.
func runPreview(sess *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	read := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	fmt.Fprintln(out, "── Step 1: Same denominators ──")
	for sess.Stage() != session.StageComplete {
		if sess.Stage() == session.StageConcept {
			fmt.Fprintln(out, "\n── Step 2: Flip and multiply ──")
			fmt.Fprint(out, lessons.FormatSteps(sess.Concept()))
			fmt.Fprint(out, "\nPress Enter to practice: ")
			if _, ok := read(); !ok {
				return scanner.Err()
			}
			if err := sess.Understood(); err != nil {
				return err
			}
			continue
		}

		p, _ := sess.Current()
		i, n := sess.Position()
		fmt.Fprintf(out, "\n[%d/%d] %s = ? ", i, n, p.Text())

		line, ok := read()
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		switch line {
		case "":
			continue
		case "q":
			fmt.Fprintln(out, "Bye!")
			return nil
		case "?":
			fmt.Fprintln(out, sess.Hint())
			continue
		}

		fb := sess.Submit(line)
		fmt.Fprintln(out, fb.Message)
		if fb.Hint != "" {
			fmt.Fprintln(out, "Hint:", fb.Hint)
		}
		if line := diagnosis.Explain(fb.Diagnosis); line != "" {
			fmt.Fprintln(out, line)
		}
		if len(fb.Solution) > 0 {
			fmt.Fprintln(out)
			fmt.Fprint(out, lessons.FormatSteps(fb.Solution))
		}
		if sess.Finished() {
			if err := sess.Next(); err != nil {
				return err
			}
		}
	}

	sum := sess.Summary()
	fmt.Fprintf(out, "\n── Summary: %d/%d correct (%.0f%%), best streak %d ──\n",
		sum.Correct, sum.Served, sum.Accuracy*100, sum.BestStreak)
	return nil
}
