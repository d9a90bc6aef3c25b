package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DefaultDir is the config directory relative to the repository root.
const DefaultDir = "infra/config"

// Load loads the config for the given key from the directory.
func Load(dir, key string, v interface{}) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%s.json", key)))
	if err != nil {
		return nil, fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("key", key).Str("dir", dir).Msg("loaded config")

	return b, nil
}

// MustLoad loads the config for the given key from the default directory
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(DefaultDir, key, v)
	if err != nil {
		panic(err.Error())
	}
	return b
}
