package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel  string      `mapstructure:"log_level"`
	LogFormat string      `mapstructure:"log_format"`
	P2P       P2PConfig   `mapstructure:"p2p"`
	Codec     CodecConfig `mapstructure:"codec"`
}

type P2PConfig struct {
	Host      string   `mapstructure:"host"`
	Port      int      `mapstructure:"port"`
	DiscPort  int      `mapstructure:"disc_port"`
	Bootnodes []string `mapstructure:"bootnodes"`
}

type CodecConfig struct {
	Lenient bool `mapstructure:"lenient"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
