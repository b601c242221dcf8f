package peerdb

import (
	"fmt"

	"xdisc/cli"
	"xdisc/store"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Stores the bootnodes listed in the config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.EnsureHomeDir(cmd)
		if err != nil {
			return err
		}
		cfg, err := cli.LoadConfig(homeDir)
		if err != nil {
			return err
		}
		bootnodes, err := cfg.BootnodePeers()
		if err != nil {
			return err
		}

		err = cli.WithDB(homeDir, func(db *leveldb.DB) error {
			return store.WithTx(db, func(tx *leveldb.Transaction) error {
				for _, peer := range bootnodes {
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
		fmt.Printf("Stored %d bootnode(s).\n", len(bootnodes))
		return nil
	},
}

func init() {
	cmd.AddCommand(bootstrapCmd)
}
