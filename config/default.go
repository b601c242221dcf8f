package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"xdisc/log"
	"xdisc/peers"

	"github.com/pkg/errors"
)

const ConfigFilename = "config.toml"

var DefaultConfig = Config{
	LogLevel:  log.LevelInfo.String(),
	LogFormat: string(log.FormatText),
	P2P: P2PConfig{
		Host:      "127.0.0.1",
		Port:      peers.DefaultPort,
		DiscPort:  peers.DefaultPort,
		Bootnodes: []string{},
	},
	Codec: CodecConfig{
		Lenient: false,
	},
}

var defaultConfigTemplate *template.Template

const defaultConfigTemplateText = `# xdisc Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Sets the log format. Can be "text" or "json".
log_format = "{{.LogFormat}}"

# Configures this node's advertised address and its bootstrap peers.
[p2p]
  # Sets the IP address advertised in this node's enode URI.
  host = "{{.P2P.Host}}"
  # Sets the TCP port advertised in this node's enode URI.
  port = {{.P2P.Port}}
  # Sets the UDP discovery port. When it differs from port, the
  # enode URI carries a discport query parameter.
  disc_port = {{.P2P.DiscPort}}
  # Sets the list of bootstrap peers. Items must be enode URIs of the form
  # enode://<hex-node-id>@<ip>:<port>[?discport=<port>].
  bootnodes = []

# Configures RLP decoding.
[codec]
  # Accepts non-canonical encodings. Only enable this for data produced by
  # a trusted encoder; network input must always be decoded strictly.
  lenient = {{.Codec.Lenient}}
`

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFilename), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFilename), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
