package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/existflow/flowboard/internal/config"
	"github.com/existflow/flowboard/internal/notify"
	"github.com/existflow/flowboard/internal/timer"
	"github.com/existflow/flowboard/internal/timeutil"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [id]",
	Short: "Run a countdown timer for a To Do task",
	Long: `Run a countdown timer for a To Do task. The task moves to In Progress
while the timer runs. Ctrl+C stops the timer early and keeps the elapsed
time; reaching the task's end time completes it.`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	database, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	task, err := resolveTask(st, args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	controller := timer.New(st, notify.NewSoundNotifier(database, cfg.DefaultSound))

	if err := controller.Start(ctx, task.ID, time.Now()); err != nil {
		if errors.Is(err, timer.ErrNotStartable) {
			return fmt.Errorf("%q is in %s; timers start from To Do", task.Title, task.Status.Title())
		}
		return err
	}

	fmt.Printf("⏱  %s — timer running until %s (Ctrl+C to stop)\n", task.Title, task.EndTime)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			elapsed, err := controller.Stop(ctx, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("\n⏹  Stopped after %s. Task stays In Progress.\n",
				timeutil.FormatDurationLong(int(elapsed.Seconds())))
			return nil

		case now := <-ticker.C:
			tick, err := controller.Tick(ctx, now)
			if err != nil {
				return err
			}
			if tick.Expired {
				fmt.Printf("\n🔔 Timer expired: %q completed after %s.\n",
					task.Title, timeutil.FormatDurationLong(int(tick.Elapsed.Seconds())))
				return nil
			}
			fmt.Printf("\r  %s remaining ", timeutil.FormatDuration(int(tick.Remaining.Seconds())))
		}
	}
}
