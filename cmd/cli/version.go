package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kcaldas/promptpack/pkg/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
		},
	}
}

func init() {
	RootCmd.AddCommand(newVersionCommand())
}
