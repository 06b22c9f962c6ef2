package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordfeud-go/internal/client"
	"github.com/mcoot/wordfeud-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

var errNoSession = errors.New("not logged in: run 'wf login' or pass --session")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wf",
		Short: "CLI tool for the Wordfeud game service",
		Long: `wf is a command line client for the Wordfeud game service.

It covers logging in, listing and reading games, playing moves, chat,
invitations and the cached board and ruleset reference data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load session from file if not provided via flag/env
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			resolved, err := cfg.Resolve()
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			app, err = factory.New(resolved, logger)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file (env: WORDFEUD_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&cfg.Server, "server", cfg.Server, "Server host or URL, overrides config")
	rootCmd.PersistentFlags().StringVar(&cfg.Session, "session", cfg.Session, "Session id (env: WORDFEUD_SESSION)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: WORDFEUD_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newRulesetCmd())
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newSwapCmd())
	rootCmd.AddCommand(newPassCmd())
	rootCmd.AddCommand(newResignCmd())
	rootCmd.AddCommand(newInviteCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newRelationshipsCmd())
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		NewOutput(cfg.Output, rootCmd.OutOrStdout()).PrintError(rootCmd.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}

// session returns the active session or an error telling the user to log in
func session() (string, error) {
	if cfg.Session == "" {
		return "", errNoSession
	}
	return cfg.Session, nil
}

// withSession runs fn with the client and the active session
func withSession(fn func(c *client.Client, session string) error) error {
	s, err := session()
	if err != nil {
		return err
	}
	return fn(app.Client, s)
}
