package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"xdisc/crypto"
	"xdisc/peers"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type peerJSON struct {
	ID      string       `json:"id"`
	Host    string       `json:"host"`
	UDPPort int          `json:"udp_port"`
	TCPPort *int         `json:"tcp_port"`
	URI     string       `json:"uri"`
	Hash    *crypto.Hash `json:"hash"`
}

func newPeerJSON(peer peers.Peer) *peerJSON {
	ep := peer.Endpoint()
	out := &peerJSON{
		ID:      peer.ID().String(),
		Host:    ep.Host(),
		UDPPort: ep.UDPPort(),
		URI:     peer.URI(),
	}
	if port, ok := ep.TCPPort(); ok {
		out.TCPPort = &port
	}
	hash := peer.Hash()
	out.Hash = &hash
	return out
}

// PrintPeers writes peers as a table, or as one JSON object per line when
// the format flag is json.
func PrintPeers(cmd *cobra.Command, w io.Writer, list []peers.Peer) error {
	if IsJSON(cmd) {
		encoder := json.NewEncoder(w)
		for _, peer := range list {
			if err := encoder.Encode(newPeerJSON(peer)); err != nil {
				return err
			}
		}
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Node ID",
		"Host",
		"UDP",
		"TCP",
	})
	for _, peer := range list {
		ep := peer.Endpoint()
		tcp := "-"
		if port, ok := ep.TCPPort(); ok {
			tcp = strconv.Itoa(port)
		}
		table.Append([]string{
			abbreviate(peer.ID().String()),
			ep.Host(),
			strconv.Itoa(ep.UDPPort()),
			tcp,
		})
	}
	table.Render()
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Total: %d\n", len(list))
	return nil
}

func abbreviate(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "…" + id[len(id)-8:]
}
