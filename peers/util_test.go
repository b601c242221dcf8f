package peers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var fixedIDHex = strings.Repeat("0a", 32) + strings.Repeat("b1", 32)

func fixedID(t *testing.T) NodeID {
	id, err := NodeIDFromHex(fixedIDHex)
	require.NoError(t, err)
	return id
}
