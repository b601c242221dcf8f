package cmd

import (
	"fmt"
	"os"

	"xdisc/cli"
	"xdisc/cmd/xdisc/cmd/arith"
	"xdisc/cmd/xdisc/cmd/codec"
	"xdisc/cmd/xdisc/cmd/enode"
	"xdisc/cmd/xdisc/cmd/peerdb"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xdisc",
	Short: "Discovery wire-data toolkit: RLP, 256-bit values and enode peer records.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.xdisc", "Home directory for the node's config, identity and database.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, cli.FormatText, "Output format (text or json)")
	enode.AddCmd(rootCmd)
	peerdb.AddCmd(rootCmd)
	codec.AddCmd(rootCmd)
	arith.AddCmd(rootCmd)
}
