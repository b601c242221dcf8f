package cli

import (
	"xdisc/config"
	"xdisc/log"
	"xdisc/rlp"
	"xdisc/version"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var logger = log.WithModule("cli")

// LoadConfig reads and validates the config in homeDir, then applies its
// logging settings.
func LoadConfig(homeDir string) (*config.Config, error) {
	cfg, err := config.ReadConfigFile(homeDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "error validating config file")
	}
	level, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing log level")
	}
	log.SetLevel(level)
	if err := log.SetFormat(log.Format(cfg.LogFormat)); err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "home", homeDir, "user_agent", version.UserAgent)
	return cfg, nil
}

// DecodeOptionsFor returns the RLP options for a decoding command. The
// lenient flag wins; otherwise the codec setting of an initialized home
// directory applies.
func DecodeOptionsFor(cmd *cobra.Command) []rlp.Option {
	if lenient, _ := cmd.Flags().GetBool(FlagLenient); lenient {
		return []rlp.Option{rlp.Lenient()}
	}
	homeDir := GetHomeDir(cmd)
	if exists, _ := config.HomeDirExists(homeDir); !exists {
		return nil
	}
	cfg, err := config.ReadConfigFile(homeDir)
	if err != nil {
		logger.Warn("ignoring unreadable config", "home", homeDir, "err", err)
		return nil
	}
	return DecodeOptions(cfg)
}

func DecodeOptions(cfg *config.Config) []rlp.Option {
	if cfg != nil && cfg.Codec.Lenient {
		return []rlp.Option{rlp.Lenient()}
	}
	return nil
}

func GetIdentity(homeDir string) (*config.Identity, error) {
	identity, err := config.ReadNodeIdentity(homeDir)
	if err != nil {
		return nil, errors.Wrap(err, "error opening home directory")
	}
	return identity, nil
}

func IsJSON(cmd *cobra.Command) bool {
	format, _ := cmd.Flags().GetString(FlagFormat)
	return format == FormatJSON
}
