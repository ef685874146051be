package cli

import (
	"github.com/adrianmusante/mws-tools/internal/convert"
	"github.com/spf13/cobra"
)

func newRQCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rq [flags] <input-file>",
		Short: "Print the run number and R/Q values of every \"Mode Number\" section",
		Args:  inputArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], convert.ModeRQ)
		},
	}
}
