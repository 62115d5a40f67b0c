package lucid

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lucidkit/lucidkit/pkg/errors"
)

// EnvAPIKey is the environment variable that overrides any config file.
const EnvAPIKey = "LUCID_API_KEY"

// Config is the on-disk client configuration.
//
//	[api]
//	key = "lucid-api-key"
type Config struct {
	API struct {
		Key string `toml:"key"`
	} `toml:"api"`
}

// LoadAPIKey resolves the API key: the LUCID_API_KEY environment variable
// wins, then the TOML file at path. An empty path searches ./config.toml
// followed by ~/.config/lucidkit/config.toml. Returns an UNAUTHORIZED
// error when no key is found anywhere.
func LoadAPIKey(path string) (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}

	paths := []string{path}
	if path == "" {
		paths = []string{"config.toml"}
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".config", "lucidkit", "config.toml"))
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		var cfg Config
		if _, err := toml.DecodeFile(p, &cfg); err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "parse %s", p)
		}
		if cfg.API.Key != "" {
			return cfg.API.Key, nil
		}
	}

	return "", errors.New(errors.ErrCodeUnauthorized,
		"no API key found: set %s or add [api] key to config.toml", EnvAPIKey)
}
