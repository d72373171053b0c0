package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracdiv/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded lessons and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? [y/N] ", dbPath)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
				return nil
			}
		}

		existed, err := store.Remove(dbPath)
		if err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		if !existed {
			fmt.Fprintln(cmd.OutOrStdout(), "No database found; nothing to reset.")
			return nil
		}
		log := logger(cmd)
		log.Info().Str("db", dbPath).Msg("database removed")
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
