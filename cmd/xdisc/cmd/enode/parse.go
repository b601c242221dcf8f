package enode

import (
	"fmt"
	"os"
	"strconv"

	"xdisc/cli"
	"xdisc/peers"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <uri>",
	Short: "Parses an enode URI and prints its fields.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		peer, err := peers.FromURI(args[0])
		if err != nil {
			return err
		}
		if cli.IsJSON(cmd) {
			return cli.PrintPeers(cmd, os.Stdout, []peers.Peer{peer})
		}
		printFields(peer)
		return nil
	},
}

func printFields(peer peers.Peer) {
	ep := peer.Endpoint()
	tcp := "-"
	if port, ok := ep.TCPPort(); ok {
		tcp = strconv.Itoa(port)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Node ID", peer.ID().String()})
	table.Append([]string{"Host", ep.Host()})
	table.Append([]string{"UDP Port", strconv.Itoa(ep.UDPPort())})
	table.Append([]string{"TCP Port", tcp})
	table.Append([]string{"Hash", peer.Hash().String()})
	table.Render()
	fmt.Println("")
	fmt.Printf("URI: %s\n", peer.URI())
	fmt.Printf("RLP: %x\n", peer.Encode())
}

func init() {
	cmd.AddCommand(parseCmd)
}
