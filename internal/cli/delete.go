package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/existflow/flowboard/internal/model"
	"github.com/existflow/flowboard/internal/store"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := st.Delete(ctx, task.ID); err != nil {
		return err
	}

	fmt.Printf("✗ Deleted: %q\n", task.Title)
	return nil
}

// resolveTask finds a task by full id or unambiguous id prefix
func resolveTask(st *store.Store, idOrPrefix string) (model.Task, error) {
	if task, err := st.Get(idOrPrefix); err == nil {
		return task, nil
	}

	var matches []model.Task
	for _, t := range st.Tasks() {
		if strings.HasPrefix(t.ID, idOrPrefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Task{}, fmt.Errorf("no task matches %q", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, fmt.Errorf("%q matches %d tasks, use more of the id", idOrPrefix, len(matches))
	}
}
