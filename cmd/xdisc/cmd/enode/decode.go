package enode

import (
	"fmt"
	"os"

	"xdisc/cli"
	"xdisc/peers"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decodes an RLP peer record. Reads stdin when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cli.ReadHexArg(args, 0)
		if err != nil {
			return err
		}
		peer, err := peers.Decode(data.ToSlice(), cli.DecodeOptionsFor(cmd)...)
		if err != nil {
			return err
		}
		if cli.IsJSON(cmd) {
			return cli.PrintPeers(cmd, os.Stdout, []peers.Peer{peer})
		}
		fmt.Println(peer.URI())
		return nil
	},
}

func init() {
	decodeCmd.Flags().Bool(cli.FlagLenient, false, "Accept non-canonical RLP")
	cmd.AddCommand(decodeCmd)
}
