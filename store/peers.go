package store

import (
	"xdisc/peers"
	"xdisc/util"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	leveldbutil "github.com/syndtr/goleveldb/leveldb/util"
)

var ErrPeerNotFound = errors.New("peer not found")

var (
	peersPrefix    = Prefixer("peers")
	peerDataPrefix = peersPrefix.Sub("record")
)

// Records are stored under their node ID in canonical RLP form. A later
// record for the same node ID replaces the earlier one.

func SetPeer(db *leveldb.DB, peer peers.Peer) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		return SetPeerTx(tx, peer)
	})
}

func SetPeerTx(tx *leveldb.Transaction, peer peers.Peer) error {
	if err := tx.Put(peerDataPrefix(peer.ID().String()), peer.Encode(), nil); err != nil {
		return errors.Wrap(err, "error writing peer")
	}
	logger.Trace("stored peer", "id", peer.ID(), "endpoint", peer.Endpoint())
	return nil
}

func GetPeer(db *leveldb.DB, id peers.NodeID) (peers.Peer, error) {
	b, err := db.Get(peerDataPrefix(id.String()), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return peers.Peer{}, ErrPeerNotFound
	}
	if err != nil {
		return peers.Peer{}, errors.Wrap(err, "error getting peer")
	}
	return decodeStoredPeer(b)
}

func HasPeer(db *leveldb.DB, id peers.NodeID) (bool, error) {
	has, err := db.Has(peerDataPrefix(id.String()), nil)
	if err != nil {
		return false, errors.Wrap(err, "error checking for peer existence")
	}
	return has, nil
}

func DeletePeer(db *leveldb.DB, id peers.NodeID) error {
	return WithTx(db, func(tx *leveldb.Transaction) error {
		k := peerDataPrefix(id.String())
		has, err := tx.Has(k, nil)
		if err != nil {
			return errors.Wrap(err, "error checking for peer existence")
		}
		if !has {
			return ErrPeerNotFound
		}
		if err := tx.Delete(k, nil); err != nil {
			return errors.Wrap(err, "error deleting peer")
		}
		return nil
	})
}

type PeerStream struct {
	iter iterator.Iterator
}

// Next returns the next stored peer, or nil when the stream is exhausted.
func (ps *PeerStream) Next() (*peers.Peer, error) {
	if !ps.iter.Next() {
		return nil, nil
	}

	peer, err := decodeStoredPeer(ps.iter.Value())
	if err != nil {
		return nil, errors.Wrapf(err, "error decoding peer at key %s", string(ps.iter.Key()))
	}
	return &peer, nil
}

func (ps *PeerStream) Close() error {
	ps.iter.Release()
	return ps.iter.Error()
}

func StreamPeers(db *leveldb.DB) (*PeerStream, error) {
	iter := db.NewIterator(leveldbutil.BytesPrefix(peerDataPrefix("")), nil)
	return &PeerStream{
		iter: iter,
	}, nil
}

func AllPeers(db *leveldb.DB) ([]peers.Peer, error) {
	stream, err := StreamPeers(db)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var out []peers.Peer
	for {
		peer, err := stream.Next()
		if err != nil {
			return nil, err
		}
		if peer == nil {
			break
		}
		out = append(out, *peer)
	}
	return out, nil
}

// SamplePeers returns up to count distinct stored peers in random order.
func SamplePeers(db *leveldb.DB, count int) ([]peers.Peer, error) {
	all, err := AllPeers(db)
	if err != nil {
		return nil, err
	}
	return util.Sample(all, count), nil
}

func TruncatePeerStore(db *leveldb.DB) error {
	err := WithTx(db, func(tx *leveldb.Transaction) error {
		iter := tx.NewIterator(leveldbutil.BytesPrefix(peersPrefix("")), nil)
		defer iter.Release()
		for iter.Next() {
			if err := tx.Delete(iter.Key(), nil); err != nil {
				return errors.Wrap(err, "error deleting peer store key")
			}
		}
		return iter.Error()
	})
	if err != nil {
		return errors.Wrap(err, "error truncating peer store")
	}
	return nil
}

func decodeStoredPeer(b []byte) (peers.Peer, error) {
	return peers.Decode(b)
}
