package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <local> <remote>",
		Short: "Upload a single file to the card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			fi, err := f.Stat()
			if err != nil {
				return err
			}

			res, err := newClient().Put(cmd.Context(), args[1], f, fi.Size())
			if err != nil {
				return err
			}

			fmt.Printf("uploaded %s (%d bytes)\n", res.Path, res.Size)
			return nil
		},
	}
}
