package cli

import (
	"io"
	"os"

	"github.com/mugiliam/hatchcatalogctl/internal/argsource"
	"github.com/spf13/cobra"
)

const maxDocumentSize = 1 << 20

func newApplyCmd(e *env, opts *globalOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run the command described by an argument document",
		Long: `Run the command described by a YAML or JSON argument document:

  version: v1
  command: catalogs create
  arguments:
    name: sales
    storage_type: s3
    role_arn: arn:aws:iam::123456789012:role/catalog
    default_base_location: s3://sales/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readDocument(e.stdin, file)
			if err != nil {
				return argsource.ErrArgumentSource.Err(err)
			}
			command, args, err := argsource.ParseDocument(data)
			if err != nil {
				return err
			}
			return run(cmd.Context(), e, opts, command, args)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "Argument document to read; - reads standard input")
	return cmd
}

func readDocument(stdin io.Reader, file string) ([]byte, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return io.ReadAll(io.LimitReader(r, maxDocumentSize+1))
}
