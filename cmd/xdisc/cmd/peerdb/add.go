package peerdb

import (
	"fmt"

	"xdisc/cli"
	"xdisc/peers"
	"xdisc/store"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var addCmd = &cobra.Command{
	Use:   "add <uri>...",
	Short: "Stores one or more enode URIs. A record replaces any earlier one for the same node ID.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.EnsureHomeDir(cmd)
		if err != nil {
			return err
		}
		if _, err := cli.LoadConfig(homeDir); err != nil {
			return err
		}

		var parsed []peers.Peer
		for _, uri := range args {
			peer, err := peers.FromURI(uri)
			if err != nil {
				return err
			}
			parsed = append(parsed, peer)
		}

		err = cli.WithDB(homeDir, func(db *leveldb.DB) error {
			return store.WithTx(db, func(tx *leveldb.Transaction) error {
				for _, peer := range parsed {
					if err := store.SetPeerTx(tx, peer); err != nil {
						return err
					}
				}
				return nil
			})
		})
		if err != nil {
			return err
		}
		fmt.Printf("Stored %d peer(s).\n", len(parsed))
		return nil
	},
}

func init() {
	cmd.AddCommand(addCmd)
}
