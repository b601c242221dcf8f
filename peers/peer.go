package peers

import (
	"fmt"

	"xdisc/bytesval"
	"xdisc/crypto"
	"xdisc/log"
	"xdisc/rlp"

	"github.com/pkg/errors"
)

var logger = log.WithModule("peers")

// Peer is a node ID paired with the endpoint it is reachable at. Peers are
// immutable and comparable with ==, so they can be used as map keys.
type Peer struct {
	id       NodeID
	endpoint Endpoint
}

var _ crypto.Hasher = Peer{}

func NewPeer(id NodeID, endpoint Endpoint) (Peer, error) {
	if endpoint.host == "" {
		return Peer{}, errors.Wrap(ErrInvalidHost, "endpoint cannot be empty")
	}
	return Peer{
		id:       id,
		endpoint: endpoint,
	}, nil
}

func (p Peer) ID() NodeID {
	return p.id
}

func (p Peer) Endpoint() Endpoint {
	return p.endpoint
}

func (p Peer) Equal(other Peer) bool {
	return p == other
}

// Hash returns the blake2b hash of the peer's canonical re-encoding, not of
// the bytes it was decoded from. Decoding normalizes IPv4-mapped IPv6
// addresses to 4 bytes, so a record received with a 16-byte mapped IP
// hashes like its 4-byte form.
func (p Peer) Hash() crypto.Hash {
	return crypto.Blake2B256(p.Encode())
}

func (p Peer) String() string {
	return fmt.Sprintf("Peer{id=%s, endpoint=%s}", p.id, p.endpoint)
}

func (p Peer) payloadSize() int {
	return p.endpoint.InlineSize() + rlp.ElementSize(p.id.Bytes())
}

func (p Peer) EncodedSize() int {
	return rlp.ListSize(p.payloadSize())
}

// WriteTo writes the peer as the list [ip, udp, tcp?, id].
func (p Peer) WriteTo(dest bytesval.Mutable, destOffset int) (int, error) {
	if _, err := dest.Window(destOffset, p.EncodedSize()); err != nil {
		return destOffset, err
	}
	off, err := rlp.WriteListHeader(p.payloadSize(), dest, destOffset)
	if err != nil {
		return destOffset, err
	}
	if off, err = p.endpoint.WriteInline(dest, off); err != nil {
		return destOffset, err
	}
	return rlp.WriteElement(p.id.Bytes(), dest, off)
}

func (p Peer) Encode() []byte {
	buf := make([]byte, p.EncodedSize())
	if _, err := p.WriteTo(bytesval.WrapMutable(buf), 0); err != nil {
		panic(err)
	}
	return buf
}

// ReadFrom decodes a peer list: the endpoint fields inline, then the node ID
// as the last item.
func ReadFrom(in *rlp.Input) (Peer, error) {
	n, err := in.EnterList()
	if err != nil {
		return Peer{}, err
	}
	endpoint, err := DecodeInline(in, n-1)
	if err != nil {
		return Peer{}, err
	}
	idBytes, err := in.ReadBytes()
	if err != nil {
		return Peer{}, errors.Wrap(err, "error reading node ID")
	}
	id, err := NewNodeID(idBytes.ToSlice())
	if err != nil {
		return Peer{}, err
	}
	if err := in.LeaveList(); err != nil {
		return Peer{}, err
	}
	return NewPeer(id, endpoint)
}

// Decode decodes a single peer occupying all of b.
func Decode(b []byte, opts ...rlp.Option) (Peer, error) {
	in := rlp.NewInput(bytesval.Wrap(b), opts...)
	p, err := ReadFrom(in)
	if err != nil {
		return Peer{}, err
	}
	if !in.IsDone() {
		return Peer{}, rlp.ErrTrailingData
	}
	return p, nil
}
