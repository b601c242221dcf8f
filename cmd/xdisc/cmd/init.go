package cmd

import (
	"fmt"

	"xdisc/cli"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the home directory with a config file and a new identity.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, identity, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Successfully initialized xdisc in %s.\n", dir)
		fmt.Printf("Node ID: %s\n", identity.NodeID())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
