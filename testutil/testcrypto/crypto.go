package testcrypto

import (
	"encoding/hex"
	"testing"

	"xdisc/crypto"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"
)

func RandKey() (*btcec.PrivateKey, *btcec.PublicKey) {
	priv := crypto.NewPrivateKey()
	return priv, priv.PubKey()
}

func FixedKey(t *testing.T) (*btcec.PrivateKey, *btcec.PublicKey) {
	data, err := hex.DecodeString("86d4da79175bf6984ef62676a20069d35527c45ccc398d46b7fdb9b0783cccf7")
	require.NoError(t, err)
	return btcec.PrivKeyFromBytes(btcec.S256(), data)
}

// FixedPubKeyBytes returns the 64-byte encoding of FixedKey's public key.
func FixedPubKeyBytes(t *testing.T) []byte {
	_, pub := FixedKey(t)
	b := crypto.SerializePubKey(pub)
	return b[:]
}
