package peers

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFromURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		host string
		udp  int
		tcp  int
	}{
		{"plain", "enode://" + fixedIDHex + "@127.0.0.1:30303", "127.0.0.1", 30303, 30303},
		{"discport", "enode://" + fixedIDHex + "@127.0.0.1:30303?discport=30304", "127.0.0.1", 30304, 30303},
		{"default port", "enode://" + fixedIDHex + "@10.1.2.3", "10.1.2.3", DefaultPort, DefaultPort},
		{"ipv6", "enode://" + fixedIDHex + "@[2001:db8:0:0::1]:30305", "2001:db8::1", 30305, 30305},
		{"invalid discport ignored", "enode://" + fixedIDHex + "@127.0.0.1:30303?discport=70000", "127.0.0.1", 30303, 30303},
		{"zero discport ignored", "enode://" + fixedIDHex + "@127.0.0.1:30303?discport=0", "127.0.0.1", 30303, 30303},
		{"other query ignored", "enode://" + fixedIDHex + "@127.0.0.1:30303?foo=bar", "127.0.0.1", 30303, 30303},
		{"discport with extra query ignored", "enode://" + fixedIDHex + "@127.0.0.1:30303?discport=30304&foo=bar", "127.0.0.1", 30303, 30303},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromURI(tt.uri)
			require.NoError(t, err)
			require.Equal(t, fixedID(t), p.ID())
			require.Equal(t, tt.host, p.Endpoint().Host())
			require.Equal(t, tt.udp, p.Endpoint().UDPPort())
			tcp, ok := p.Endpoint().TCPPort()
			require.True(t, ok)
			require.Equal(t, tt.tcp, tcp)
		})
	}
}

func TestFromURI_Errors(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		err  error
	}{
		{"wrong scheme", "http://" + fixedIDHex + "@127.0.0.1:30303", ErrInvalidURI},
		{"uppercase scheme", "ENODE://" + fixedIDHex + "@127.0.0.1:30303", ErrInvalidURI},
		{"no user info", "enode://127.0.0.1:30303", ErrInvalidURI},
		{"empty user info", "enode://@127.0.0.1:30303", ErrInvalidURI},
		{"unparseable", "enode://" + fixedIDHex + "@127.0.0.1:port", ErrInvalidURI},
		{"short id", "enode://" + fixedIDHex[:74] + "@127.0.0.1:30303", ErrInvalidNodeID},
		{"long id", "enode://" + fixedIDHex + "00@127.0.0.1:30303", ErrInvalidNodeID},
		{"non-hex id", "enode://" + fixedIDHex[:126] + "zz@127.0.0.1:30303", ErrInvalidNodeID},
		{"password", "enode://" + fixedIDHex + ":pw@127.0.0.1:30303", ErrInvalidNodeID},
		{"port zero", "enode://" + fixedIDHex + "@127.0.0.1:0", ErrInvalidPort},
		{"port too large", "enode://" + fixedIDHex + "@127.0.0.1:65536", ErrInvalidPort},
		{"hostname", "enode://" + fixedIDHex + "@example.com:30303", ErrInvalidHost},
		{"empty host", "enode://" + fixedIDHex + "@:30303", ErrInvalidHost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromURI(tt.uri)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.err), "got %v", err)
			require.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestPeer_URIRoundTrip(t *testing.T) {
	uris := []string{
		"enode://" + fixedIDHex + "@127.0.0.1:30303",
		"enode://" + fixedIDHex + "@127.0.0.1:30303?discport=30304",
		"enode://" + fixedIDHex + "@[::1]:1",
	}
	for _, uri := range uris {
		p, err := FromURI(uri)
		require.NoError(t, err)
		require.Equal(t, uri, p.URI())
	}

	ep, err := NewEndpoint("10.0.0.1", 30301)
	require.NoError(t, err)
	p, err := NewPeer(fixedID(t), ep)
	require.NoError(t, err)
	require.Equal(t, "enode://"+fixedIDHex+"@10.0.0.1:30301", p.URI())
}
