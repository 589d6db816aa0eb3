package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/fontset/internal/domain"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the applications available on this platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listApps(cmd.OutOrStdout(), domain.Apps())
			return nil
		},
	}
}

func listApps(out io.Writer, specs []domain.AppSpec) {
	for _, spec := range specs {
		fmt.Fprintln(out, spec.Token)
	}
}
