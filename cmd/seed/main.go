package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/snakesocial/snakesocial/internal/factory"
	"github.com/snakesocial/snakesocial/internal/model"
	"github.com/snakesocial/snakesocial/internal/storage/postgres"
)

// Demo data mirrored from the original fixtures
var (
	demoAccounts = []struct {
		username, email, password string
	}{
		{"SnakeMaster", "demo@snake.io", "demo123"},
		{"ViperKing", "viper@snake.io", "viper123"},
		{"TestUser", "test@snake.io", "password"},
	}

	demoScores = []struct {
		username string
		score    int
		mode     model.Mode
	}{
		{"PixelViper", 2450, model.ModeWalls},
		{"NeonByte", 1980, model.ModePassThrough},
		{"GridRunner", 1750, model.ModeWalls},
		{"ByteSnake", 1620, model.ModePassThrough},
		{"CyberCoil", 1400, model.ModeWalls},
		{"RetroFang", 1350, model.ModeWalls},
		{"GlitchWorm", 1200, model.ModePassThrough},
		{"VectorSlide", 1100, model.ModeWalls},
		{"SolidSnake", 900, model.ModePassThrough},
		{"LiquidOcelot", 850, model.ModeWalls},
	}

	demoSessions = []struct {
		id       model.PlayerID
		username string
		score    int
		mode     model.Mode
	}{
		{"p1", "PixelViper", 340, model.ModeWalls},
		{"p2", "NeonByte", 180, model.ModePassThrough},
		{"p3", "GridRunner", 50, model.ModeWalls},
		{"p4", "NewbieSnake", 10, model.ModePassThrough},
	}
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var databaseURL string

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the Snake Social database with demo data",
		Long: `seed populates the database with demo accounts, leaderboard entries
and active player sessions. Existing records are left in place; conflicting
rows are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), databaseURL)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL (env: DATABASE_URL)")

	return rootCmd
}

func run(ctx context.Context, databaseURL string) error {
	if databaseURL == "" {
		return errors.New("--database-url or DATABASE_URL is required")
	}

	pgCfg := postgres.DefaultConfig()
	pgCfg.URL = databaseURL

	// Seeding goes through the services so hashing and validation apply
	app, err := factory.New(ctx, factory.Config{
		StorageType:    factory.StorageTypePostgres,
		PostgresConfig: &pgCfg,
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	fmt.Println("Seeding database...")

	for _, a := range demoAccounts {
		_, err := app.AccountService.Signup(ctx, a.email, a.username, a.password)
		switch {
		case errors.Is(err, model.ErrEmailTaken), errors.Is(err, model.ErrUsernameTaken):
			fmt.Printf("  account %s already exists, skipping\n", a.email)
		case err != nil:
			return fmt.Errorf("seed account %s: %w", a.email, err)
		default:
			fmt.Printf("  created account %s (%s)\n", a.username, a.email)
		}
	}

	for _, e := range demoScores {
		if _, err := app.LeaderboardService.Submit(ctx, e.username, e.score, e.mode); err != nil {
			return fmt.Errorf("seed score for %s: %w", e.username, err)
		}
		fmt.Printf("  recorded %d points for %s (%s)\n", e.score, e.username, e.mode)
	}

	for _, p := range demoSessions {
		_, err := app.GameService.StartSession(ctx, p.id, p.username, p.score, p.mode, time.Now())
		switch {
		case errors.Is(err, model.ErrPlayerExists):
			fmt.Printf("  session %s already exists, skipping\n", p.id)
		case err != nil:
			return fmt.Errorf("seed session %s: %w", p.id, err)
		default:
			fmt.Printf("  started session %s for %s\n", p.id, p.username)
		}
	}

	fmt.Println("Done. Demo login: demo@snake.io / demo123")
	return nil
}
