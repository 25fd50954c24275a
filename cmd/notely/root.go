package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notely"
	"github.com/aretw0/notely/pkg/router"
)

var (
	verbose    bool
	baseURL    string
	stateDir   string
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notely",
	Short: "A command-line client for a remote notes service",
	Long: `notely logs in to a notes REST service, keeps the session token in
your state directory and lets you list, create, update and delete notes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Root URL of the notes API (default "+notely.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Directory holding the session token")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: nearest .notely.yaml, then the user config dir)")
}

// openApp builds the App from config file, environment and flags, in
// increasing order of precedence.
func openApp(ctx context.Context) *notely.App {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get CWD", err)
	}

	cfg, err := notely.ResolveConfig(configPath, wd)
	if err != nil {
		fatal("Failed to load config", err)
	}
	if cfg.Source != "" {
		slog.Debug("config loaded", "path", cfg.Source)
	}

	opts := append(cfg.Options(),
		notely.WithLogger(slog.Default()),
		notely.WithUserAgent("notely/"+strings.TrimSpace(notely.Version)),
	)
	if baseURL != "" {
		opts = append(opts, notely.WithBaseURL(baseURL))
	}
	if stateDir != "" {
		opts = append(opts, notely.WithStateDir(stateDir))
	}

	app, err := notely.New(ctx, opts...)
	if err != nil {
		fatal("Error initializing notely", err)
	}
	return app
}

// navigate opens the App and enters route. Protected routes exit with a
// hint when the guard sends the user to the login route instead.
func navigate(ctx context.Context, route string) *notely.App {
	app := openApp(ctx)
	if got := app.Navigate(route); got != route {
		if got == router.LoginPath {
			fail("Not logged in: run 'notely login'")
		}
		fail(fmt.Sprintf("Cannot open %s", route))
	}
	return app
}
