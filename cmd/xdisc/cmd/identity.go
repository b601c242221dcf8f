package cmd

import (
	"fmt"
	"os"

	"xdisc/cli"
	"xdisc/peers"

	"github.com/spf13/cobra"
)

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Prints this node's enode URI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.EnsureHomeDir(cmd)
		if err != nil {
			return err
		}
		cfg, err := cli.LoadConfig(homeDir)
		if err != nil {
			return err
		}
		identity, err := cli.GetIdentity(homeDir)
		if err != nil {
			return err
		}
		self, err := identity.Self(cfg)
		if err != nil {
			return err
		}

		if cli.IsJSON(cmd) {
			return cli.PrintPeers(cmd, os.Stdout, []peers.Peer{self})
		}
		fmt.Println(self.URI())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(identityCmd)
}
