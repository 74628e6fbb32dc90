package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"travel-planner/config"
	"travel-planner/internal/app"
	"travel-planner/internal/travel"
	"travel-planner/pkg/log"
)

var (
	sessionID   string
	planFormat  string
	plain       bool
	preferences []string
	destination string
	planFile    string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Plan a trip in the terminal",
	Long: `chat runs the travel planning dialogue in-process, using the same
configuration as the API server. Type /help inside the session for commands.`,
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	rootCmd.Flags().StringVarP(&sessionID, "session", "s", "", "Resume or name a session (default: a new one)")
	rootCmd.Flags().StringVar(&planFormat, "plan-format", formatText, "Format used by /plan: text, json or yaml")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Print replies without markdown rendering")
	rootCmd.Flags().StringSliceVar(&preferences, "preferences", nil, "Seed preferences for a new session (comma separated)")
	rootCmd.Flags().StringVar(&destination, "destination", "", "Seed the destination of a new session")
	rootCmd.Flags().StringVar(&planFile, "plan-file", "", "Seed a new session with an existing plan (JSON, YAML or markdown)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level")
}

func runChat(cmd *cobra.Command, args []string) error {
	if !validFormat(planFormat) {
		return fmt.Errorf("unknown --plan-format %q", planFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := log.Init(log.ZapConfig{
		Level:    logLevel,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer engine.Close()

	id := sessionID
	if id == "" || len(preferences) > 0 || destination != "" || planFile != "" {
		seed := travel.CreateSessionInput{Destination: destination, Preferences: preferences}
		if planFile != "" {
			if seed.Plan, seed.PlanText, err = loadPlanFile(planFile); err != nil {
				return err
			}
		}
		state, err := engine.UseCase.CreateSession(ctx, seed)
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		id = state.ID
	}

	r := &repl{
		uc:        engine.UseCase,
		sessionID: id,
		format:    planFormat,
		render:    newRenderer(plain),
		in:        cmd.InOrStdin(),
		out:       cmd.OutOrStdout(),
	}
	return r.run(ctx)
}
