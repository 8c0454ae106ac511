package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/flowboard/internal/config"
	"github.com/existflow/flowboard/internal/db"
	"github.com/existflow/flowboard/internal/logger"
	"github.com/existflow/flowboard/internal/notify"
	"github.com/existflow/flowboard/internal/store"
	"github.com/existflow/flowboard/internal/timer"
	"github.com/existflow/flowboard/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "flowboard",
	Short: "FlowBoard - Kanban board with task timers",
	Long: `FlowBoard is a Kanban-style to-do board with per-task countdown
timers and productivity analytics, persisted locally.

Run 'flowboard' without arguments to launch the interactive board.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("FlowBoard started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.OpenDefault()
		if err != nil {
			logger.Error("Failed to open database", logger.F("error", err))
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() {
			_ = database.Close()
		}()

		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		ctx := context.Background()
		st := store.New(ctx, database)
		notifier := notify.NewSoundNotifier(database, cfg.DefaultSound)
		controller := timer.New(st, notifier)

		logger.Info("Launching board")
		m := tui.NewModel(st, controller)
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run board: %w", err)
		}

		logger.Info("Board exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(backlogCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(soundCmd)
}

// openStore opens the default database and restores the task store.
// The caller closes the returned database handle.
func openStore(ctx context.Context) (*db.DB, *store.Store, error) {
	database, err := db.OpenDefault()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, store.New(ctx, database), nil
}
