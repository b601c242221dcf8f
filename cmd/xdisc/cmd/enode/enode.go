package enode

import "github.com/spf13/cobra"

var cmd = &cobra.Command{
	Use:   "enode",
	Short: "Commands for parsing and encoding enode peer records.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
