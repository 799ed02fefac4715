package cfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings the command-line tools read from disk.
type Config struct {
	ClientID string
	// Directory downloads are written into. Empty means the working directory.
	DownloadDir string
}

const defaultConfigPath = "~/.config/soundcloud/config.toml"

// ClientIDEnv overrides the config file's client_id when set.
const ClientIDEnv = "SOUNDCLOUD_CLIENT_ID"

// Load reads the TOML config at path (or the default location when path is
// empty). A missing file is not an error; the environment can still supply
// the client id.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config

	data, err := os.ReadFile(resolved)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err == nil {
		var raw struct {
			ClientID    string `toml:"client_id"`
			DownloadDir string `toml:"download_dir"`
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.ClientID = strings.TrimSpace(raw.ClientID)
		cfg.DownloadDir = strings.TrimSpace(raw.DownloadDir)
	}

	if env := strings.TrimSpace(os.Getenv(ClientIDEnv)); env != "" {
		cfg.ClientID = env
	}

	if cfg.ClientID == "" {
		return Config{}, fmt.Errorf("no client id: set client_id in %s or export %s", resolved, ClientIDEnv)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
