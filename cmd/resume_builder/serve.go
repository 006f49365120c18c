package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server exposing resume structuring, document upload, profile scraping " +
		"and generation endpoints. Storage and generation are enabled when DATABASE_URL and " +
		"GEMINI_API_KEY are set.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply the database schema before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	store, err := newCache(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ingester, err := newIngester(ctx)
	if err != nil {
		return err
	}

	deps := server.Deps{
		Ingester:    ingester,
		GitHub:      newGitHubClient(store),
		Posts:       newPostScraper(store),
		RateLimiter: ratelimit.NewLimiter(cfg.RateLimit.LimiterConfig()),
	}

	if cfg.Database.URL != "" {
		database, err := db.Connect(ctx, cfg.Database.URL, db.PoolOptions{MaxConns: cfg.Database.MaxConns})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if serveMigrate {
			if err := database.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		deps.Documents = database
	} else {
		logger.Warn().Msg("DATABASE_URL not set, document storage disabled")
	}

	if cfg.LLM.APIKey != "" {
		client, err := newLLMClient(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		deps.Generator = generation.NewGenerator(client, llm.TierStandard)
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, resume generation disabled")
	}

	srv, err := server.New(cfg.Server, deps)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
