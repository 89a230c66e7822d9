package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetforge/migration-compass/internal/cli"
)

func main() {
	command := NewCompassCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCompassCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compass [flags] [options]",
		Short: "compass controls the migration-compass service.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdCreate())
	cmd.AddCommand(cli.NewCmdDelete())
	cmd.AddCommand(cli.NewCmdExport())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
