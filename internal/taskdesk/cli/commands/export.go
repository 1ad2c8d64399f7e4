package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/export"
)

func ExportCmd() *cobra.Command {
	var (
		status string
		owner  string
		sortBy string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current task view to a timestamped JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := LoadEnv()
			if err != nil {
				return err
			}
			visible, err := derivedView(cmd, env, status, owner, sortBy)
			if err != nil {
				return err
			}
			dir := outDir
			if dir == "" {
				dir = env.Config.ExportDir
			}
			if dir == "" {
				dir = env.Root
			}
			ok, path, err := export.NewWriter(dir).Write(visible)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No visible tasks to export")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Exported", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only tasks with this status")
	cmd.Flags().StringVar(&owner, "owner", "", "Only tasks owned by this person id")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by title, status, or created")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for the export file")
	return cmd
}
