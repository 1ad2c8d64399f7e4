package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mistakeknot/taskdesk/internal/taskdesk/cli/commands"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/config"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/export"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/session"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/task"
	"github.com/mistakeknot/taskdesk/internal/taskdesk/tui"
)

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(env commands.Env) error {
	exportDir := env.Config.ExportDir
	if exportDir == "" {
		exportDir = env.Root
	}
	table := tui.NewTableView()
	sess := session.New(
		env.Client,
		table,
		task.NewSorter(env.Config.LanguageTag()),
		export.NewWriter(exportDir),
		env.Log,
	)
	p := tea.NewProgram(tui.NewModel(sess, table), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdesk",
		Short: "Task management front end for the shared task store",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.LoadEnv()
			if err != nil {
				return err
			}
			if err := config.EnsureInitialized(env.Root); err != nil {
				return err
			}
			return runTUI(env)
		},
	}
	root.AddCommand(
		commands.SearchCmd(),
		commands.AddCmd(),
		commands.ListCmd(),
		commands.ExportCmd(),
	)
	return root
}
