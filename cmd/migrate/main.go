package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-admin/internal/handler/middleware"
	"delivery-admin/internal/pkg/config"
	"delivery-admin/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var (
	atlasBin string
	timeout  time.Duration

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Apply the embedded schema migrations with atlas",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = middleware.NewLoggerTo(os.Stderr, config.LogConfig{
			Level:      "info",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		})
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply every pending migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withAtlas(cmd.Context(), func(ctx context.Context, client *atlasexec.Client, url string) error {
			res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
			logger.Info("マイグレーションを適用しました",
				"applied", len(res.Applied), "current", res.Current, "target", res.Target)
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withAtlas(cmd.Context(), func(ctx context.Context, client *atlasexec.Client, url string) error {
			res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
			if err != nil {
				return fmt.Errorf("failed to read migration status: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\ncurrent: %s\nnext: %s\npending: %d\n",
				res.Status, res.Current, res.Next, len(res.Pending))
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&atlasBin, "atlas", "atlas", "path to the atlas binary")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	rootCmd.AddCommand(applyCmd, statusCmd)
}

// loadDBConfig reads only the DB_* variables; the server's other required
// settings are irrelevant here.
func loadDBConfig() (config.DBConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.DBConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}
	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return config.DBConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func withAtlas(ctx context.Context, fn func(context.Context, *atlasexec.Client, string) error) error {
	dbCfg, err := loadDBConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return fmt.Errorf("failed to prepare migration directory: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}
	return fn(ctx, client, dbCfg.BuildDSN())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		stop()
		os.Exit(1)
	}
}
