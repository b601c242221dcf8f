package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"xdisc/peers"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func testCmd(format string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(FlagFormat, format, "")
	return cmd
}

func TestPrintPeers(t *testing.T) {
	id := strings.Repeat("0a", 32) + strings.Repeat("b1", 32)
	a, err := peers.FromURI("enode://" + id + "@127.0.0.1:30303")
	require.NoError(t, err)
	b, err := peers.FromURI("enode://" + id + "@10.0.0.1:30303?discport=30301")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PrintPeers(testCmd(FormatText), &buf, []peers.Peer{a, b}))
	out := buf.String()
	require.Contains(t, out, "127.0.0.1")
	require.Contains(t, out, "30301")
	require.Contains(t, out, "Total: 2")

	buf.Reset()
	require.NoError(t, PrintPeers(testCmd(FormatJSON), &buf, []peers.Peer{b}))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, id, decoded["id"])
	require.Equal(t, "10.0.0.1", decoded["host"])
	require.EqualValues(t, 30301, decoded["udp_port"])
	require.EqualValues(t, 30303, decoded["tcp_port"])
	require.Equal(t, b.URI(), decoded["uri"])
	require.Equal(t, b.Hash().String(), decoded["hash"])
}
