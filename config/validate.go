package config

import (
	"xdisc/log"
	"xdisc/peers"

	"github.com/pkg/errors"
)

// Validate checks the values that cannot be expressed in the TOML schema.
func (c *Config) Validate() error {
	if _, err := log.NewLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	if c.LogFormat != string(log.FormatText) && c.LogFormat != string(log.FormatJSON) {
		return errors.Errorf("invalid log_format %q", c.LogFormat)
	}
	if _, err := c.SelfEndpoint(); err != nil {
		return errors.Wrap(err, "invalid p2p config")
	}
	if _, err := c.BootnodePeers(); err != nil {
		return err
	}
	return nil
}

// SelfEndpoint returns the endpoint this node advertises.
func (c *Config) SelfEndpoint() (peers.Endpoint, error) {
	return peers.NewEndpointWithTCP(c.P2P.Host, c.P2P.DiscPort, c.P2P.Port)
}

func (c *Config) BootnodePeers() ([]peers.Peer, error) {
	out := make([]peers.Peer, 0, len(c.P2P.Bootnodes))
	for _, uri := range c.P2P.Bootnodes {
		p, err := peers.FromURI(uri)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid bootnode %q", uri)
		}
		out = append(out, p)
	}
	return out, nil
}
