package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/validate"
)

func AddCmd() *cobra.Command {
	var (
		title       string
		description string
		status      string
	)
	cmd := &cobra.Command{
		Use:   "add <document>",
		Short: "Register a task owned by the person with the given document id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fe := validate.TaskForm(title, description, status); !fe.OK() {
				return fmt.Errorf("%s", fe.First())
			}
			env, err := LoadEnv()
			if err != nil {
				return err
			}
			person, err := env.Client.FindPersonByDocument(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("task store unreachable: %w", err)
			}
			if person == nil {
				return fmt.Errorf("no person found with document id %q", args[0])
			}
			draft := task.Draft{Title: title, Description: description, Status: task.Status(status)}
			created, err := env.Client.CreateTask(cmd.Context(), task.New(draft, *person))
			if err != nil {
				return fmt.Errorf("create task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered task %s for %s\n", created.ID, created.OwnerName)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", string(task.StatusPending), "Task status (pending, in_progress, done)")
	return cmd
}
