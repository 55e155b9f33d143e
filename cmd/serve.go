package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wheeltrack/internal/analytics"
	"wheeltrack/internal/catalog"
	"wheeltrack/internal/plan"
	"wheeltrack/internal/progress"
	"wheeltrack/internal/server"
	"wheeltrack/internal/tracker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides WHEELTRACK_ADDR env var, default :8080)")
	serveCmd.Flags().String("skills-dir", "", "Load the skill catalog from a directory instead of the built-in set")
}

func listenAddr(cmd *cobra.Command) string {
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		return addr
	}
	if addr := os.Getenv("WHEELTRACK_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	dir, _ := cmd.Flags().GetString("skills-dir")
	if dir == "" {
		dir = os.Getenv("WHEELTRACK_SKILLS_DIR")
	}
	if dir == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(dir)
}

func runServe(cmd *cobra.Command) error {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	cat, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded", zap.Int("skills", cat.Len()))

	svc := progress.New(s.UserRepo(), s.AttemptRepo(), cat, s)
	engine := analytics.New(s.AttemptRepo())
	rec := plan.NewPhaseRecommender(cat)

	srv := server.New(server.Deps{
		Log:         log,
		Catalog:     cat,
		Tracker:     tracker.New(s.UserRepo(), s.AttemptRepo(), cat),
		Progress:    svc,
		Engine:      engine,
		Plans:       plan.NewGenerator(svc, engine, rec),
		Recommender: rec,
	})
	return srv.Run(listenAddr(cmd))
}
