package cmd

import (
	"github.com/spf13/cobra"

	"wheeltrack/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wheeltrack",
	Short: "Wheelchair skill training tracker",
	Long:  "Wheeltrack is an attempt tracking and error analytics service for wheelchair skill training.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WHEELTRACK_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WHEELTRACK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
