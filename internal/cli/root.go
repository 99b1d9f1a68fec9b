// Package cli реализует команды утилиты cardfs-cli поверх pkg/cardclient.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inkreader/cardfs/pkg/cardclient"
)

var serverURL string

func newClient() *cardclient.Client {
	c := cardclient.New(serverURL)
	c.Progress = true
	return c
}

// Execute собирает дерево команд и запускает корневую.
func Execute() error {
	root := &cobra.Command{
		Use:           "cardfs-cli",
		Short:         "Operator client for the cardfs file server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	def := os.Getenv("CARDFS_SERVER")
	if def == "" {
		def = "http://localhost:8080"
	}
	root.PersistentFlags().StringVarP(&serverURL, "server", "s", def, "cardfs server base URL")

	root.AddCommand(
		newInfoCmd(),
		newLsCmd(),
		newGetCmd(),
		newPutCmd(),
		newRmCmd(),
		newMkdirCmd(),
		newRmdirCmd(),
		newPushCmd(),
	)

	return root.Execute()
}
