package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
)

func ListCmd() *cobra.Command {
	var (
		status string
		owner  string
		sortBy string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := LoadEnv()
			if err != nil {
				return err
			}
			visible, err := derivedView(cmd, env, status, owner, sortBy)
			if err != nil {
				return err
			}
			if len(visible) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks registered yet.")
				return nil
			}
			for i, t := range visible {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n",
					i+1, t.ID, t.Title, t.Status.Badge(), t.OwnerName)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only tasks with this status")
	cmd.Flags().StringVar(&owner, "owner", "", "Only tasks owned by this person id")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort by title, status, or created")
	return cmd
}

// derivedView fetches the collection and applies the same filter-then-sort
// pipeline the interactive table uses.
func derivedView(cmd *cobra.Command, env Env, status, owner, sortBy string) ([]task.Task, error) {
	tasks, err := env.Client.ListTasks(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("task store unreachable: %w", err)
	}
	criteria := task.Criteria{Status: task.Status(status), Owner: owner}
	sorter := task.NewSorter(env.Config.LanguageTag())
	return sorter.Sort(task.Filter(tasks, criteria), task.SortKey(sortBy)), nil
}
