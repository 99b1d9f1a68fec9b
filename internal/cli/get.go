package cli

import (
	"io"
	"os"
	"path"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <remote> [local]",
		Short: "Download a file from the card",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote := args[0]
			local := path.Base(remote)
			if len(args) == 2 {
				local = args[1]
			}

			body, _, err := newClient().Get(cmd.Context(), remote)
			if err != nil {
				return err
			}
			defer body.Close()

			f, err := os.Create(local)
			if err != nil {
				return err
			}

			_, err = io.Copy(f, body)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(local)
			}

			return err
		},
	}
}
