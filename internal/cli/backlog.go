package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var backlogCmd = &cobra.Command{
	Use:   "backlog",
	Short: "Move every To Do task to the backlog",
	RunE:  runBacklog,
}

func runBacklog(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	database, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	moved, err := st.MoveToBacklog(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("→ Moved %d task(s) to Backlog.\n", moved)
	return nil
}
