package peers

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"xdisc/bytesval"
	"xdisc/rlp"

	"github.com/pkg/errors"
)

const (
	MinPort     = 1
	MaxPort     = 65535
	DefaultPort = 30303
)

func IsValidPort(port int) bool {
	return port >= MinPort && port <= MaxPort
}

// Endpoint is a validated host with a UDP port and an optional TCP port.
// Endpoints are comparable with ==.
type Endpoint struct {
	host    string
	udpPort uint16
	// zero when absent
	tcpPort uint16
}

func NewEndpoint(host string, udpPort int) (Endpoint, error) {
	h, err := normalizeHost(host)
	if err != nil {
		return Endpoint{}, err
	}
	if !IsValidPort(udpPort) {
		return Endpoint{}, errors.Wrapf(ErrInvalidPort, "udp port %d", udpPort)
	}
	return Endpoint{
		host:    h,
		udpPort: uint16(udpPort),
	}, nil
}

func NewEndpointWithTCP(host string, udpPort int, tcpPort int) (Endpoint, error) {
	ep, err := NewEndpoint(host, udpPort)
	if err != nil {
		return Endpoint{}, err
	}
	if !IsValidPort(tcpPort) {
		return Endpoint{}, errors.Wrapf(ErrInvalidPort, "tcp port %d", tcpPort)
	}
	ep.tcpPort = uint16(tcpPort)
	return ep, nil
}

// normalizeHost accepts IPv4 and IPv6 literals, including bracketed IPv6 as
// found in URIs, and returns their canonical text form.
func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", errors.Wrap(ErrInvalidHost, "host cannot be empty")
	}
	literal := host
	if strings.HasPrefix(literal, "[") && strings.HasSuffix(literal, "]") {
		literal = literal[1 : len(literal)-1]
	}
	ip := net.ParseIP(literal)
	if ip == nil {
		return "", errors.Wrapf(ErrInvalidHost, "%q is not an IP address", host)
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.String(), nil
	}
	return ip.String(), nil
}

func (e Endpoint) Host() string {
	return e.host
}

func (e Endpoint) IP() net.IP {
	ip := net.ParseIP(e.host)
	if v4 := ip.To4(); v4 != nil {
		return v4
	}
	return ip
}

func (e Endpoint) UDPPort() int {
	return int(e.udpPort)
}

func (e Endpoint) TCPPort() (int, bool) {
	return int(e.tcpPort), e.tcpPort != 0
}

// TCPPortOr returns the TCP port, or def when the endpoint has none.
func (e Endpoint) TCPPortOr(def int) int {
	if e.tcpPort == 0 {
		return def
	}
	return int(e.tcpPort)
}

func (e Endpoint) UDPAddr() *net.UDPAddr {
	return &net.UDPAddr{IP: e.IP(), Port: e.UDPPort()}
}

// TCPAddr falls back to the UDP port when no TCP port is known.
func (e Endpoint) TCPAddr() *net.TCPAddr {
	return &net.TCPAddr{IP: e.IP(), Port: e.TCPPortOr(e.UDPPort())}
}

func (e Endpoint) String() string {
	tcp := "none"
	if port, ok := e.TCPPort(); ok {
		tcp = strconv.Itoa(port)
	}
	return fmt.Sprintf("Endpoint{host=%s, udp=%d, tcp=%s}", e.host, e.udpPort, tcp)
}

func (e Endpoint) fields() []bytesval.Bytes {
	fields := []bytesval.Bytes{
		bytesval.Wrap(e.IP()),
		rlp.ScalarBytes(uint64(e.udpPort)),
	}
	if e.tcpPort != 0 {
		fields = append(fields, rlp.ScalarBytes(uint64(e.tcpPort)))
	}
	return fields
}

// InlineSize is the encoded size of the endpoint's fields without a list
// header.
func (e Endpoint) InlineSize() int {
	var size int
	for _, f := range e.fields() {
		size += rlp.ElementSize(f)
	}
	return size
}

func (e Endpoint) EncodedSize() int {
	return rlp.ListSize(e.InlineSize())
}

// WriteInline writes the endpoint's fields into the current list of dest.
func (e Endpoint) WriteInline(dest bytesval.Mutable, destOffset int) (int, error) {
	if _, err := dest.Window(destOffset, e.InlineSize()); err != nil {
		return destOffset, err
	}
	off := destOffset
	for _, f := range e.fields() {
		var err error
		if off, err = rlp.WriteElement(f, dest, off); err != nil {
			return destOffset, err
		}
	}
	return off, nil
}

// WriteTo writes the endpoint as a standalone list.
func (e Endpoint) WriteTo(dest bytesval.Mutable, destOffset int) (int, error) {
	if _, err := dest.Window(destOffset, e.EncodedSize()); err != nil {
		return destOffset, err
	}
	off, err := rlp.WriteListHeader(e.InlineSize(), dest, destOffset)
	if err != nil {
		return destOffset, err
	}
	return e.WriteInline(dest, off)
}

func (e Endpoint) Encode() []byte {
	buf := make([]byte, e.EncodedSize())
	if _, err := e.WriteTo(bytesval.WrapMutable(buf), 0); err != nil {
		panic(err)
	}
	return buf
}

// DecodeInline reads an endpoint from the next itemCount items of the
// current list, leaving the cursor on the following sibling. itemCount is 2
// (no TCP port) or 3. A TCP port of zero is treated as absent.
func DecodeInline(in *rlp.Input, itemCount int) (Endpoint, error) {
	if itemCount < 2 || itemCount > 3 {
		return Endpoint{}, errors.Wrapf(rlp.ErrMalformedList, "endpoint has %d fields", itemCount)
	}

	ipBytes, err := in.ReadBytes()
	if err != nil {
		return Endpoint{}, errors.Wrap(err, "error reading endpoint IP")
	}
	if ipBytes.Size() != net.IPv4len && ipBytes.Size() != net.IPv6len {
		return Endpoint{}, errors.Wrapf(ErrInvalidHost, "IP of %d bytes", ipBytes.Size())
	}
	host := net.IP(ipBytes.ToSlice()).String()

	udpPort, err := readPort(in)
	if err != nil {
		return Endpoint{}, errors.Wrap(err, "error reading endpoint UDP port")
	}
	if itemCount == 2 {
		return NewEndpoint(host, udpPort)
	}
	tcpPort, err := readPort(in)
	if err != nil {
		return Endpoint{}, errors.Wrap(err, "error reading endpoint TCP port")
	}
	if tcpPort == 0 {
		return NewEndpoint(host, udpPort)
	}
	return NewEndpointWithTCP(host, udpPort, tcpPort)
}

func readPort(in *rlp.Input) (int, error) {
	port, err := in.ReadUint64()
	if err != nil {
		return 0, err
	}
	if port > MaxPort {
		return 0, errors.Wrapf(ErrInvalidPort, "port %d", port)
	}
	return int(port), nil
}

// ReadEndpoint reads an endpoint encoded as a standalone list.
func ReadEndpoint(in *rlp.Input) (Endpoint, error) {
	n, err := in.EnterList()
	if err != nil {
		return Endpoint{}, err
	}
	ep, err := DecodeInline(in, n)
	if err != nil {
		return Endpoint{}, err
	}
	if err := in.LeaveList(); err != nil {
		return Endpoint{}, err
	}
	return ep, nil
}
