package peerdb

import (
	"os"

	"xdisc/cli"
	"xdisc/peers"
	"xdisc/store"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

const SampleFlag = "sample"

var sample int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored peer records.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.EnsureHomeDir(cmd)
		if err != nil {
			return err
		}
		if _, err := cli.LoadConfig(homeDir); err != nil {
			return err
		}

		var list []peers.Peer
		err = cli.WithDB(homeDir, func(db *leveldb.DB) error {
			var err error
			if sample > 0 {
				list, err = store.SamplePeers(db, sample)
			} else {
				list, err = store.AllPeers(db)
			}
			return err
		})
		if err != nil {
			return err
		}
		return cli.PrintPeers(cmd, os.Stdout, list)
	},
}

func init() {
	listCmd.Flags().IntVar(&sample, SampleFlag, 0, "Return at most this many peers chosen at random")
	cmd.AddCommand(listCmd)
}
