package cmd

import (
	"github.com/spf13/cobra"
)

// BuildCommandTree creates the full command tree. The root command runs a
// draw; subcommands share its flags.
func BuildCommandTree(factory SessionFactory) *cobra.Command {
	root := NewRootCmd()
	s := bindSettings(root)

	root.Args = cobra.NoArgs
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runDraw(cmd, s, factory)
	}

	root.AddCommand(NewSimulateCmd(s, factory))
	root.AddCommand(NewVerifyCmd(s, factory))
	root.AddCommand(NewCheckCmd(s, factory))

	return root
}
