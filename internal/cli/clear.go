package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/existflow/flowboard/internal/config"
	"github.com/existflow/flowboard/internal/model"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear [column]",
	Short: "Remove every task in a column",
	Long: `Remove every task in one board column.

Examples:
  flowboard clear completed
  flowboard clear backlog --force`,
	Args: cobra.ExactArgs(1),
	RunE: runClear,
}

func init() {
	clearCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	status, err := model.ParseStatus(args[0])
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if cfg.ConfirmClear && !force {
		fmt.Printf("Clear every task in %s? (y/N): ", status.Title())
		var response string
		_, _ = fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx := context.Background()
	database, st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	removed, err := st.ClearColumn(ctx, status)
	if err != nil {
		return err
	}

	fmt.Printf("🧹 Cleared %d task(s) from %s.\n", removed, status.Title())
	return nil
}
