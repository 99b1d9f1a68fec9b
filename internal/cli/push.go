package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <local-dir> [remote-dir]",
		Short: "Upload a directory tree as one multipart batch",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote := "/"
			if len(args) == 2 {
				remote = args[1]
			}

			res, err := newClient().PushTree(cmd.Context(), args[0], remote)
			if err != nil {
				return err
			}

			fmt.Printf("pushed %d files into %s\n", res.Count, remote)
			return nil
		},
	}
}
