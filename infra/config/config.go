package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Run describes a single clustering run.
// Ints takes precedence over Data when both are given.
type Run struct {
	Data     []float64 `json:"data"`
	Ints     []int64   `json:"ints"`
	Clusters int       `json:"clusters"`
	Epochs   int       `json:"epochs"`
	Seed     *uint64   `json:"seed,omitempty"`
	Level    string    `json:"level,omitempty"`
}

// Load reads the json file at the given path into v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config from %s: %w", path, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config from %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("loaded config")

	return nil
}

// MustLoad loads the config from the given path and panics on failure.
func MustLoad(path string, v interface{}) {
	if err := Load(path, v); err != nil {
		panic(err.Error())
	}
}
