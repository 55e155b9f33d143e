package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"wheeltrack/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show system-wide error statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		g, err := analytics.New(s.AttemptRepo()).Global(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Attempts: %d   Users: %d\n\n", g.TotalAttempts, g.TotalUsers)

		if len(g.SkillSummary) > 0 {
			fmt.Println("Skills by failure rate:")
			for _, row := range g.SkillSummary {
				fmt.Printf("  %-22s %3d attempts  %5.1f%% failed  %3d errors\n",
					row.SkillID, row.TotalAttempts, row.FailureRate*100, row.TotalErrors)
			}
			fmt.Println()
		}

		if len(g.ProblematicSteps) > 0 {
			fmt.Println("Most problematic steps:")
			for _, ps := range g.ProblematicSteps {
				fmt.Printf("  %-22s step %2d  %3d errors  (%s)\n",
					ps.SkillID, ps.StepNumber, ps.ErrorCount, ps.MostCommonError)
			}
			fmt.Println()
		}

		if len(g.ActionConfusion) > 0 {
			fmt.Println("Action confusion:")
			for _, ac := range g.ActionConfusion {
				fmt.Printf("  %3dx  %s\n", ac.Count, ac.Description)
			}
		}
		return nil
	},
}
