package cli

import (
	"github.com/mugiliam/hatchcatalogctl/internal/transport"
	"github.com/mugiliam/hatchcatalogctl/pkg/api"
	"github.com/spf13/cobra"
)

func newVersionCmd(e *env, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := transport.ParseFormat(opts.output)
			if err != nil {
				return err
			}
			return transport.NewPrinter(e.stdout, format, "").Print(api.GetVersion())
		},
	}
}
