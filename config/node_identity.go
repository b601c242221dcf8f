package config

import (
	"io/ioutil"
	"path"

	"xdisc/crypto"
	"xdisc/peers"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

const (
	IdentityFilename = "identity"
)

// Identity holds the node's raw secp256k1 private key. The node ID is the
// uncompressed public key.
type Identity struct {
	PrivateKey *btcec.PrivateKey
}

func NewIdentity() *Identity {
	return &Identity{
		PrivateKey: crypto.NewPrivateKey(),
	}
}

func (n *Identity) NodeID() peers.NodeID {
	return peers.NodeIDFromPubKey(n.PrivateKey.PubKey())
}

// Self returns the peer record this node advertises under cfg.
func (n *Identity) Self(cfg *Config) (peers.Peer, error) {
	endpoint, err := cfg.SelfEndpoint()
	if err != nil {
		return peers.Peer{}, err
	}
	return peers.NewPeer(n.NodeID(), endpoint)
}

func (n *Identity) MarshalBinary() (data []byte, err error) {
	return n.PrivateKey.Serialize(), nil
}

func (n *Identity) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return errors.New("invalid private key length")
	}

	pk, _ := btcec.PrivKeyFromBytes(btcec.S256(), data)
	n.PrivateKey = pk
	return nil
}

func WriteIdentity(homePath string, id *Identity) error {
	idPath := path.Join(homePath, IdentityFilename)
	data, _ := id.MarshalBinary()
	return ioutil.WriteFile(idPath, data, 0600)
}

func ReadNodeIdentity(homePath string) (*Identity, error) {
	idPath := path.Join(homePath, IdentityFilename)
	data, err := ioutil.ReadFile(idPath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading identity file")
	}

	id := &Identity{}
	err = id.UnmarshalBinary(data)
	return id, err
}
