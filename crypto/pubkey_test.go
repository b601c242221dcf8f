package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"
)

func TestPubKeyRoundTrip(t *testing.T) {
	data, err := hex.DecodeString("86d4da79175bf6984ef62676a20069d35527c45ccc398d46b7fdb9b0783cccf7")
	require.NoError(t, err)
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), data)

	serialized := SerializePubKey(pub)
	parsed, err := ParsePubKey(serialized[:])
	require.NoError(t, err)
	require.True(t, parsed.IsEqual(pub))
}

func TestParsePubKey_Invalid(t *testing.T) {
	_, err := ParsePubKey(make([]byte, 37))
	require.Error(t, err)
	require.Contains(t, err.Error(), "public key must be 64 bytes")

	// (0, 0) is not on the curve
	_, err = ParsePubKey(make([]byte, PubKeySize))
	require.Error(t, err)
}

func TestNewPrivateKey(t *testing.T) {
	a := NewPrivateKey()
	b := NewPrivateKey()
	require.False(t, a.PubKey().IsEqual(b.PubKey()))
}
