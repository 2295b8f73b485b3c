package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all statistics, high scores and preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to erase data without --yes")
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		if err := e.kv.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		e.log.Info("all data reset")
		fmt.Fprintln(cmd.OutOrStdout(), "All data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
