package config

import (
	"bytes"
	"io/ioutil"
	"path"
	"strings"
	"testing"

	"xdisc/testutil/testfs"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	id := strings.Repeat("ab", 64)
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		errMsg string
	}{
		{"bad log level", func(cfg *Config) { cfg.LogLevel = "loud" }, "invalid log_level"},
		{"bad log format", func(cfg *Config) { cfg.LogFormat = "xml" }, "invalid log_format"},
		{"bad port", func(cfg *Config) { cfg.P2P.Port = 0 }, "invalid p2p config"},
		{"bad host", func(cfg *Config) { cfg.P2P.Host = "localhost" }, "invalid p2p config"},
		{"bad bootnode", func(cfg *Config) { cfg.P2P.Bootnodes = []string{"enode://" + id[:10] + "@127.0.0.1"} }, "invalid bootnode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			cfg.P2P.Bootnodes = nil
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestReadConfig_Bootnodes(t *testing.T) {
	id := strings.Repeat("ab", 64)
	raw := `
log_level = "debug"
log_format = "json"
[p2p]
  host = "10.0.0.1"
  port = 30303
  disc_port = 30301
  bootnodes = ["enode://` + id + `@10.0.0.2:30303?discport=30304"]
[codec]
  lenient = true
`
	cfg, err := ReadConfig(strings.NewReader(raw))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.True(t, cfg.Codec.Lenient)

	bootnodes, err := cfg.BootnodePeers()
	require.NoError(t, err)
	require.Len(t, bootnodes, 1)
	require.Equal(t, 30304, bootnodes[0].Endpoint().UDPPort())

	self, err := cfg.SelfEndpoint()
	require.NoError(t, err)
	require.Equal(t, 30301, self.UDPPort())
	require.Equal(t, 30303, self.TCPPortOr(0))
}

func TestInitHomeDir(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	home := dir + "/home"

	exists, err := HomeDirExists(home)
	require.NoError(t, err)
	require.False(t, exists)
	require.Error(t, EnsureHomeDir(home))

	created, err := InitHomeDir(home)
	require.NoError(t, err)
	require.NoError(t, EnsureHomeDir(home))

	cfg, err := ReadConfigFile(home)
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)

	identity, err := ReadNodeIdentity(home)
	require.NoError(t, err)
	self, err := identity.Self(cfg)
	require.NoError(t, err)
	require.Equal(t, identity.NodeID(), self.ID())

	require.Equal(t, created.NodeID(), identity.NodeID())

	pub, err := self.ID().PubKey()
	require.NoError(t, err)
	require.True(t, pub.IsEqual(identity.PrivateKey.PubKey()))

	again, err := InitHomeDir(home)
	require.NoError(t, err)
	require.Equal(t, identity.NodeID(), again.NodeID())
}

func TestInitHomeDir_KeepsCorruptIdentity(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	idPath := path.Join(dir, IdentityFilename)
	truncated := bytes.Repeat([]byte{'0'}, 31)
	require.NoError(t, ioutil.WriteFile(idPath, truncated, 0600))

	_, err := InitHomeDir(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "existing identity file is unusable")

	after, err := ioutil.ReadFile(idPath)
	require.NoError(t, err)
	require.Equal(t, truncated, after)
}
