package peers

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const URIScheme = "enode"

// discportQuery must match the whole query string.
var discportQuery = regexp.MustCompile(`^discport=([0-9]{1,5})$`)

// FromURI parses enode://<hex-id>@<host>[:<port>][?discport=<port>]. The URI
// port is the TCP port and defaults to DefaultPort. It is also the UDP port
// unless a valid discport query overrides it.
func FromURI(uri string) (Peer, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Peer{}, errors.Wrap(ErrInvalidURI, err.Error())
	}
	// url.Parse lowercases the scheme
	if u.Scheme != URIScheme || !strings.HasPrefix(uri, URIScheme+":") {
		return Peer{}, errors.Wrapf(ErrInvalidURI, "scheme must be %s", URIScheme)
	}
	if u.User == nil || u.User.Username() == "" {
		return Peer{}, errors.Wrap(ErrInvalidURI, "node id cannot be empty")
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		return Peer{}, errors.Wrap(ErrInvalidNodeID, "user info must be a bare node id")
	}

	id, err := NodeIDFromHex(u.User.Username())
	if err != nil {
		return Peer{}, err
	}

	tcpPort := DefaultPort
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || !IsValidPort(port) {
			return Peer{}, errors.Wrapf(ErrInvalidPort, "port %q", p)
		}
		tcpPort = port
	}

	udpPort := tcpPort
	if u.RawQuery != "" {
		if port, ok := discportFromQuery(u.RawQuery); ok {
			udpPort = port
		} else {
			logger.Trace("ignoring enode query", "query", u.RawQuery)
		}
	}

	endpoint, err := NewEndpointWithTCP(u.Hostname(), udpPort, tcpPort)
	if err != nil {
		return Peer{}, err
	}
	return NewPeer(id, endpoint)
}

func discportFromQuery(query string) (int, bool) {
	match := discportQuery.FindStringSubmatch(query)
	if match == nil {
		return 0, false
	}
	port, err := strconv.Atoi(match[1])
	if err != nil || !IsValidPort(port) {
		return 0, false
	}
	return port, true
}

// URI renders the peer as an enode URI. Peers without a TCP port use their
// UDP port as the URI port.
func (p Peer) URI() string {
	udpPort := p.endpoint.UDPPort()
	tcpPort := p.endpoint.TCPPortOr(udpPort)
	uri := fmt.Sprintf("%s://%s@%s", URIScheme, p.id, net.JoinHostPort(p.endpoint.Host(), strconv.Itoa(tcpPort)))
	if udpPort != tcpPort {
		uri += "?discport=" + strconv.Itoa(udpPort)
	}
	return uri
}
