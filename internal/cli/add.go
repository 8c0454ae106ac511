package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/existflow/flowboard/internal/model"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task to the To Do column",
	Long: `Add a new task to the To Do column.

Examples:
  flowboard add "Write weekly report" --start 09:00 --end 10:30
  flowboard add "Standup" -s 09:45 -e 10:00 -d "Daily team sync"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addStart       string
	addEnd         string
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "09:00", "Scheduled start time (HH:MM)")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "17:00", "Scheduled end time (HH:MM)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	database, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	title := strings.Join(args, " ")

	task, err := model.NewTask(uuid.New().String(), title, addDescription, addStart, addEnd)
	if err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := st.Add(ctx, task); err != nil {
		return err
	}

	fmt.Printf("✓ Added to [To Do]: %q (%s - %s)\n", title, task.StartTime, task.EndTime)
	return nil
}
