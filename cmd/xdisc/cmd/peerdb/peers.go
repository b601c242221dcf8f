package peerdb

import "github.com/spf13/cobra"

var cmd = &cobra.Command{
	Use:   "peers",
	Short: "Commands for managing the local peer record store.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
