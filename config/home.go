package config

import (
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	DBPath = "db"
)

// A home directory holds config.toml, the raw identity key and the peer
// database:
//
//	<home>/config.toml
//	<home>/identity
//	<home>/db/

func ExpandHomePath(path string) string {
	res, err := homedir.Expand(path)
	if err != nil {
		panic(err)
	}
	return res
}

func ExpandDBPath(homePath string) string {
	return path.Join(homePath, DBPath)
}

func HomeDirExists(homePath string) (bool, error) {
	stat, err := os.Stat(homePath)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if !stat.IsDir() {
		return false, errors.New("home dir path exists, but is a file")
	}
	return true, nil
}

func EnsureHomeDir(homePath string) error {
	exists, err := HomeDirExists(homePath)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("home directory does not exist - try running xdisc init")
	}
	return nil
}

// InitHomeDir creates the home layout. An existing identity key is kept so
// that re-initializing does not change the node ID; the config file is
// rewritten with defaults.
func InitHomeDir(homePath string) (*Identity, error) {
	if err := os.MkdirAll(homePath, 0700); err != nil {
		return nil, errors.Wrap(err, "error creating home directory")
	}

	var identity *Identity
	_, err := os.Stat(path.Join(homePath, IdentityFilename))
	switch {
	case os.IsNotExist(err):
		identity = NewIdentity()
		if err := WriteIdentity(homePath, identity); err != nil {
			return nil, errors.Wrap(err, "error writing identity")
		}
	case err != nil:
		return nil, errors.Wrap(err, "error checking identity file")
	default:
		identity, err = ReadNodeIdentity(homePath)
		if err != nil {
			return nil, errors.Wrap(err, "existing identity file is unusable")
		}
	}
	if err := os.MkdirAll(ExpandDBPath(homePath), 0700); err != nil {
		return nil, errors.Wrap(err, "error creating db directory")
	}
	if err := WriteDefaultConfigFile(homePath); err != nil {
		return nil, err
	}
	return identity, nil
}
