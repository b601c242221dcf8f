package cli

import (
	"xdisc/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func GetHomeDir(cmd *cobra.Command) string {
	homeDirUnexp, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		panic(err)
	}
	return config.ExpandHomePath(homeDirUnexp)
}

// InitHomeDir initializes a fresh home directory and returns its path and
// the generated identity.
func InitHomeDir(cmd *cobra.Command) (string, *config.Identity, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return "", nil, err
	}
	if exists {
		return "", nil, errors.New("home directory is already initialized")
	}
	identity, err := config.InitHomeDir(homeDir)
	if err != nil {
		return "", nil, err
	}
	return homeDir, identity, nil
}

// EnsureHomeDir returns the configured home directory, failing if it has not
// been initialized.
func EnsureHomeDir(cmd *cobra.Command) (string, error) {
	homeDir := GetHomeDir(cmd)
	if err := config.EnsureHomeDir(homeDir); err != nil {
		return "", err
	}
	return homeDir, nil
}
