package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/validate"
)

func SearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <document>",
		Short: "Find a person by document id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document := strings.TrimSpace(args[0])
			if fe := validate.SearchForm(document); !fe.OK() {
				return fmt.Errorf("%s", fe.First())
			}
			env, err := LoadEnv()
			if err != nil {
				return err
			}
			person, err := env.Client.FindPersonByDocument(cmd.Context(), document)
			if err != nil {
				return fmt.Errorf("task store unreachable: %w", err)
			}
			if person == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No person found with that document id")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", person.ID, person.Name, person.Email)
			return nil
		},
	}
}
