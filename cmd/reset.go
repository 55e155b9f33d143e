package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset <user_id>",
	Short: "Erase all of a user's training data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		svc := progress.New(s.UserRepo(), s.AttemptRepo(), catalog.Builtin(), s)
		if err := svc.ClearProgress(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Cleared progress for %s\n", args[0])
		return nil
	},
}
