package peerdb

import (
	"fmt"

	"xdisc/cli"
	"xdisc/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipes the peer store directly on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.EnsureHomeDir(cmd)
		if err != nil {
			return err
		}
		err = cli.WithDB(homeDir, func(db *leveldb.DB) error {
			return store.TruncatePeerStore(db)
		})
		if err != nil {
			return errors.Wrap(err, "error truncating peer store")
		}
		fmt.Println("Peer store wiped.")
		return nil
	},
}

func init() {
	cmd.AddCommand(resetCmd)
}
