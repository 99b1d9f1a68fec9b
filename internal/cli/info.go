package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server and card usage summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Info(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("device: %s\nroot:   %s\nused:   %d bytes\n", res.Device, res.Root, res.Storage.Used)
			return nil
		},
	}
}
