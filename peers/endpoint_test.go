package peers

import (
	"testing"

	"xdisc/bytesval"
	"xdisc/rlp"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name string
		host string
		udp  int
		tcp  int
		err  error
	}{
		{"ipv4", "127.0.0.1", 30303, 30303, nil},
		{"ipv6", "::1", 1, 65535, nil},
		{"bracketed ipv6", "[::1]", 30303, 30304, nil},
		{"empty host", "", 30303, 30303, ErrInvalidHost},
		{"hostname", "example.com", 30303, 30303, ErrInvalidHost},
		{"udp zero", "127.0.0.1", 0, 30303, ErrInvalidPort},
		{"udp too large", "127.0.0.1", 65536, 30303, ErrInvalidPort},
		{"tcp zero", "127.0.0.1", 30303, 0, ErrInvalidPort},
		{"tcp negative", "127.0.0.1", 30303, -1, ErrInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEndpointWithTCP(tt.host, tt.udp, tt.tcp)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tt.err), "got %v", err)
			require.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestNewEndpoint_NormalizesHost(t *testing.T) {
	ep, err := NewEndpoint("[2001:0db8:0000:0000:0000:0000:0000:0001]", 30303)
	require.NoError(t, err)
	require.Equal(t, "2001:db8::1", ep.Host())

	ep, err = NewEndpoint("::ffff:10.0.0.1", 30303)
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", ep.Host())
	require.Len(t, ep.IP(), 4)
}

func TestEndpoint_Ports(t *testing.T) {
	ep, err := NewEndpoint("10.0.0.1", 30301)
	require.NoError(t, err)
	_, ok := ep.TCPPort()
	require.False(t, ok)
	require.Equal(t, DefaultPort, ep.TCPPortOr(DefaultPort))
	require.Equal(t, 30301, ep.TCPAddr().Port)
	require.Equal(t, "10.0.0.1:30301", ep.UDPAddr().String())
	require.Equal(t, "Endpoint{host=10.0.0.1, udp=30301, tcp=none}", ep.String())

	ep, err = NewEndpointWithTCP("10.0.0.1", 30301, 30302)
	require.NoError(t, err)
	port, ok := ep.TCPPort()
	require.True(t, ok)
	require.Equal(t, 30302, port)
	require.Equal(t, "Endpoint{host=10.0.0.1, udp=30301, tcp=30302}", ep.String())
}

func TestEndpoint_Encoding(t *testing.T) {
	withTCP, err := NewEndpointWithTCP("127.0.0.1", 30303, 30304)
	require.NoError(t, err)
	require.Equal(t, "cb847f00000182765f827660", bytesval.Wrap(withTCP.Encode()).Hex())

	withoutTCP, err := NewEndpoint("127.0.0.1", 30303)
	require.NoError(t, err)
	require.Equal(t, "c8847f00000182765f", bytesval.Wrap(withoutTCP.Encode()).Hex())

	ipv6, err := NewEndpointWithTCP("::1", 1, 2)
	require.NoError(t, err)

	for _, ep := range []Endpoint{withTCP, withoutTCP, ipv6} {
		dest := bytesval.NewMutable(ep.EncodedSize() + 3)
		off, err := ep.WriteTo(dest, 3)
		require.NoError(t, err)
		require.Equal(t, dest.Size(), off)

		window, err := dest.Freeze().Slice(3, ep.EncodedSize())
		require.NoError(t, err)
		in := rlp.NewInput(window)
		n, err := in.EnterList()
		require.NoError(t, err)
		decoded, err := DecodeInline(in, n)
		require.NoError(t, err)
		require.NoError(t, in.LeaveList())
		require.Equal(t, ep, decoded)

		decoded, err = ReadEndpoint(rlp.NewInput(window))
		require.NoError(t, err)
		require.Equal(t, ep, decoded)
	}
}

func TestEndpoint_WriteToShortBuffer(t *testing.T) {
	ep, err := NewEndpoint("127.0.0.1", 30303)
	require.NoError(t, err)
	dest := bytesval.NewMutable(ep.EncodedSize() - 1)
	_, err = ep.WriteTo(dest, 0)
	require.True(t, errors.Is(err, bytesval.ErrIndexOutOfRange))
	require.Equal(t, make([]byte, dest.Size()), dest.Freeze().ToSlice())
}

func TestDecodeInline_Errors(t *testing.T) {
	tests := []struct {
		name string
		item rlp.Item
		err  error
	}{
		{
			"one field",
			rlp.NewList(rlp.NewString([]byte{127, 0, 0, 1})),
			rlp.ErrMalformedList,
		},
		{
			"four fields",
			rlp.NewList(rlp.NewString([]byte{127, 0, 0, 1}), rlp.NewString([]byte{1}), rlp.NewString([]byte{1}), rlp.NewString([]byte{1})),
			rlp.ErrMalformedList,
		},
		{
			"bad ip length",
			rlp.NewList(rlp.NewString([]byte{127, 0, 0}), rlp.NewString([]byte{1})),
			ErrInvalidHost,
		},
		{
			"udp port zero",
			rlp.NewList(rlp.NewString([]byte{127, 0, 0, 1}), rlp.NewString(nil)),
			ErrInvalidPort,
		},
		{
			"udp port too large",
			rlp.NewList(rlp.NewString([]byte{127, 0, 0, 1}), rlp.NewString([]byte{0x01, 0x00, 0x00})),
			ErrInvalidPort,
		},
		{
			"ip is a list",
			rlp.NewList(rlp.NewList(), rlp.NewString([]byte{1})),
			rlp.ErrExpectedString,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadEndpoint(rlp.NewInput(bytesval.Wrap(rlp.Encode(tt.item))))
			require.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func TestDecodeInline_ZeroTCPPortIsAbsent(t *testing.T) {
	item := rlp.NewList(rlp.NewString([]byte{127, 0, 0, 1}), rlp.NewString([]byte{0x01}), rlp.NewString(nil))
	ep, err := ReadEndpoint(rlp.NewInput(bytesval.Wrap(rlp.Encode(item))))
	require.NoError(t, err)
	_, ok := ep.TCPPort()
	require.False(t, ok)
}
