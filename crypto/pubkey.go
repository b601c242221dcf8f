package crypto

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// PubKeySize is the size of an uncompressed secp256k1 public key without
// its 0x04 prefix. Discovery node IDs have exactly this size.
const PubKeySize = 64

// SerializePubKey returns the 64-byte X||Y encoding of pub.
func SerializePubKey(pub *btcec.PublicKey) [PubKeySize]byte {
	var out [PubKeySize]byte
	copy(out[:], pub.SerializeUncompressed()[1:])
	return out
}

// ParsePubKey parses a 64-byte X||Y encoding and checks that the point lies
// on the curve.
func ParsePubKey(b []byte) (*btcec.PublicKey, error) {
	if len(b) != PubKeySize {
		return nil, errors.Errorf("public key must be %d bytes, got %d", PubKeySize, len(b))
	}
	buf := make([]byte, 1+PubKeySize)
	buf[0] = 0x04
	copy(buf[1:], b)
	pub, err := btcec.ParsePubKey(buf, btcec.S256())
	if err != nil {
		return nil, errors.Wrap(err, "invalid public key")
	}
	return pub, nil
}

func NewPrivateKey() *btcec.PrivateKey {
	pk, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		panic(err)
	}
	return pk
}
