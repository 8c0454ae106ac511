package cli

import (
	"context"
	"fmt"

	"github.com/existflow/flowboard/internal/config"
	"github.com/existflow/flowboard/internal/db"
	"github.com/existflow/flowboard/internal/notify"
	"github.com/spf13/cobra"
)

var soundCmd = &cobra.Command{
	Use:   "sound [path]",
	Short: "Show or set the timer notification sound",
	Long: `Show or set the sound played when a timer expires.

Examples:
  flowboard sound
  flowboard sound ~/sounds/chime.wav`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSound,
}

func runSound(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	database, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	notifier := notify.NewSoundNotifier(database, cfg.DefaultSound)

	if len(args) == 0 {
		fmt.Printf("Notification sound: %s\n", notifier.Sound(ctx))
		return nil
	}

	if err := notifier.SetSound(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Notification sound set to %s\n", args[0])
	return nil
}
