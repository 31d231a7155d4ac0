package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"delivery-admin/internal/handler/middleware"
	"delivery-admin/internal/infra/apiclient"
	"delivery-admin/internal/infra/sessioncache"
	"delivery-admin/internal/pkg/config"
	"delivery-admin/internal/pkg/i18n"
	"delivery-admin/internal/session"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	apiURL  string
	verbose bool

	cfg    consoleConfig
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "delivery-admin operator console",
	Long: `Operator console for the delivery-admin API.

Keeps a cached login between invocations, checks availability with the same
engine the server runs, and validates inputs locally before any request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger = middleware.NewLoggerTo(os.Stderr, config.LogConfig{
			Level:      level,
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		})

		var err error
		cfg, err = loadConsoleConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load console config: %w", err)
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.delivery-admin/console.toml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override api_url from the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(loginCmd, whoamiCmd, logoutCmd, watchCmd, availabilityCmd, checkCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// deps are built per command so that commands which never touch the session
// do not need a reachable cache.
type deps struct {
	tr     *i18n.Translator
	client *apiclient.Client
	store  session.Store
	closer func()
}

func newClient() (*i18n.Translator, *apiclient.Client) {
	tr := i18n.New(cfg.Language)
	return tr, apiclient.New(apiclient.Config{
		BaseURL:  cfg.APIURL,
		Timeout:  cfg.Timeout,
		Language: cfg.Language,
	}, tr, logger)
}

func newDeps(ctx context.Context) (*deps, error) {
	tr, client := newClient()
	d := &deps{tr: tr, client: client, closer: func() {}}

	switch cfg.Cache.Kind {
	case cacheKindRedis:
		store, err := sessioncache.NewRedisStore(ctx, sessioncache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Key:      cfg.Cache.Key,
		})
		if err != nil {
			return nil, err
		}
		d.store = store
		d.closer = func() { _ = store.Close() }
	default:
		d.store = sessioncache.NewFileStore(cfg.Cache.Path)
	}
	return d, nil
}

// newKeeper starts a keeper over d. The caller must Close it.
func (d *deps) newKeeper(ctx context.Context) (*session.Keeper, session.State) {
	k := session.NewKeeper(d.store, d.client,
		session.WithInterval(cfg.RevalidateInterval),
		session.WithLogger(logger),
	)
	return k, k.Start(ctx)
}
