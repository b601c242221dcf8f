package enode

import (
	"fmt"

	"xdisc/peers"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <uri>",
	Short: "Prints the RLP encoding of an enode URI as hex.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		peer, err := peers.FromURI(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%x\n", peer.Encode())
		return nil
	},
}

func init() {
	cmd.AddCommand(encodeCmd)
}
