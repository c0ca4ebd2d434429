package cli

import (
	"github.com/spf13/cobra"

	"github.com/netlabtools/labviz/pkg/lab"
)

// newInspectCmd creates the inspect command: parse and classify only,
// print a styled summary, render nothing.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <lab.conf>",
		Short: "Parse a lab.conf file and print a classified summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debugf("Parsing %s", args[0])

			l, err := lab.ParseFile(args[0])
			if err != nil {
				return err
			}
			printLabSummary(l)
			return nil
		},
	}
}
