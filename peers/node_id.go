package peers

import (
	"encoding/hex"
	"strings"

	"xdisc/bytesval"
	"xdisc/crypto"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// NodeIDSize is the size of a node ID: an uncompressed secp256k1 public key
// without its prefix byte.
const NodeIDSize = crypto.PubKeySize

type NodeID [NodeIDSize]byte

func NewNodeID(b []byte) (NodeID, error) {
	var id NodeID
	if len(b) != NodeIDSize {
		return id, errors.Wrapf(ErrInvalidNodeID, "must be exactly %d bytes long, got %d", NodeIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func NodeIDFromHex(s string) (NodeID, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return NodeID{}, errors.Wrap(ErrInvalidNodeID, err.Error())
	}
	return NewNodeID(b)
}

func NodeIDFromPubKey(pub *btcec.PublicKey) NodeID {
	return NodeID(crypto.SerializePubKey(pub))
}

// PubKey interprets the ID as a secp256k1 public key. Node IDs received from
// the network are not guaranteed to be valid keys.
func (id NodeID) PubKey() (*btcec.PublicKey, error) {
	return crypto.ParsePubKey(id[:])
}

func (id NodeID) Bytes() bytesval.Bytes {
	b := id
	return bytesval.Wrap(b[:])
}

func (id NodeID) String() string {
	return hex.EncodeToString(id[:])
}
