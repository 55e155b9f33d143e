package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wheeltrack/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and build the skill catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		for _, sk := range cat.Skills() {
			fmt.Printf("%-22s %-12s %2d steps  base success %.2f\n",
				sk.ID, sk.Level, len(sk.Steps), sk.BaseSuccessRate)
		}
		return nil
	},
}

var catalogParseCmd = &cobra.Command{
	Use:   "parse <skills.jsonl>",
	Short: "Build a catalog directory from a skill source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		cat, err := catalog.ParseSource(args[0])
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if err := catalog.Save(out, cat); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		fmt.Printf("Wrote %d skills to %s\n", cat.Len(), out)
		return nil
	},
}

func init() {
	catalogCmd.PersistentFlags().String("skills-dir", "", "Load the skill catalog from a directory instead of the built-in set")
	catalogParseCmd.Flags().String("out", "skills", "Output directory for the parsed catalog")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogParseCmd)
}
