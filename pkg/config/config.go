// Package config resolves the credential file paths and reads the Google client secret.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

const (
	DefaultSecretFile = "client_secret.json"
	DefaultAccessFile = "client_access.json"
)

// ErrMissingFile is returned when the client secret file does not exist.
var ErrMissingFile = errors.New("could not find authentication file")

// ResolveSecretPath returns the first positional argument, or DefaultSecretFile.
// The resolved file must exist.
func ResolveSecretPath(args []string) (string, error) {
	path := DefaultSecretFile
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return "", fmt.Errorf("checking authentication file %s: %w", path, err)
	}

	return path, nil
}

// ResolveAccessPath returns the second positional argument, or DefaultAccessFile.
// The file may not exist yet.
func ResolveAccessPath(args []string) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	return DefaultAccessFile
}

// LoadClientSecret reads the client secret at path and builds an OAuth2 config
// for full Drive access.
func LoadClientSecret(path string) (*oauth2.Config, error) {
	return loadFrom(path, drive.DriveScope)
}

func loadFrom(path string, scopes ...string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading client secret file: %w", err)
	}

	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parsing client secret file: %w", err)
	}

	return cfg, nil
}
