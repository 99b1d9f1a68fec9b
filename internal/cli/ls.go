package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List a directory on the card",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			res, err := newClient().List(cmd.Context(), path)
			if err != nil {
				return err
			}

			for _, item := range res.Items {
				if item.Type == "directory" {
					fmt.Printf("%12s  %s/\n", "", item.Name)
					continue
				}

				var size int64
				if item.Size != nil {
					size = *item.Size
				}
				fmt.Printf("%12d  %s\n", size, item.Name)
			}

			return nil
		},
	}
}
