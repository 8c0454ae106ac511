package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/existflow/flowboard/internal/timeutil"
	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show productivity analytics",
	RunE:  runAnalytics,
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	database, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	a := st.Analytics()
	now := time.Now()

	fmt.Printf("Total time spent:  %s\n", timeutil.FormatDurationLong(a.TotalTimeSpent))
	fmt.Printf("Today:             %s\n", timeutil.FormatDurationLong(a.TimeSpentOnDay(now)))
	fmt.Printf("This week:         %s\n", timeutil.FormatDurationLong(a.TimeSpentInWeek(now)))

	if id, seconds, ok := a.MostTimeConsuming(); ok {
		title := id
		if task, err := st.Get(id); err == nil {
			title = task.Title
		}
		fmt.Printf("Most time on:      %q (%s)\n", title, timeutil.FormatDurationLong(seconds))
	}

	if len(a.TasksByDay) > 0 {
		fmt.Printf("\nTasks created per day:\n")
		for _, day := range sortedKeys(a.TasksByDay) {
			fmt.Printf("  %s  %d task(s)\n", day, len(a.TasksByDay[day]))
		}
	}
	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
