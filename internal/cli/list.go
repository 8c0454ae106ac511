package cli

import (
	"context"
	"fmt"

	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/timeutil"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks by column",
	RunE:  runList,
}

var listColumn string

func init() {
	listCmd.Flags().StringVarP(&listColumn, "column", "c", "", "Only show one column (todo, inProgress, completed, backlog)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	database, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	columns := model.Statuses
	if listColumn != "" {
		status, err := model.ParseStatus(listColumn)
		if err != nil {
			return err
		}
		columns = []model.Status{status}
	}

	empty := true
	for _, status := range columns {
		tasks := st.ByColumn(status)
		if len(tasks) == 0 {
			continue
		}
		empty = false

		fmt.Printf("%s (%d)\n", status.Title(), len(tasks))
		for _, t := range tasks {
			fmt.Printf("  %s  %s - %s  %-30s  spent %s\n",
				shortID(t.ID), t.StartTime, t.EndTime, t.Title,
				timeutil.FormatDurationLong(t.TimeSpent))
		}
		fmt.Println()
	}

	if empty {
		fmt.Println("No tasks. Add one with 'flowboard add'.")
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
