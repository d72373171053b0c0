package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a lesson",
	Long: `Start the interactive lesson. Flags override the FRACDIV_EXACT_COUNT,
FRACDIV_PRACTICE_COUNT and FRACDIV_SEED settings for this run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("exact") {
			cfg.Practice.ExactCount, _ = flags.GetInt("exact")
		}
		if flags.Changed("practice") {
			cfg.Practice.PracticeCount, _ = flags.GetInt("practice")
		}
		if flags.Changed("seed") {
			cfg.Practice.Seed, _ = flags.GetUint64("seed")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().Int("exact", 3, "Problems in the same-denominator step")
	playCmd.Flags().Int("practice", 3, "Problems in each practice round")
	playCmd.Flags().Uint64("seed", 0, "Seed for a repeatable problem sequence (0 = random)")
}
