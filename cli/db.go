package cli

import (
	"xdisc/config"
	"xdisc/store"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

type DBCb func(db *leveldb.DB) error

// WithDB opens the peer store in homeDir for the duration of cb.
func WithDB(homeDir string, cb DBCb) error {
	db, err := store.Open(config.ExpandDBPath(homeDir))
	if err != nil {
		return errors.Wrap(err, "error opening store")
	}
	if err := cb(db); err != nil {
		db.Close()
		return err
	}
	if err := db.Close(); err != nil {
		return errors.Wrap(err, "error closing DB")
	}
	return nil
}
