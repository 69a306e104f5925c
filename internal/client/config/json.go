package config

import (
	"encoding/json"
	"os"

	"github.com/avolkov/storefront/internal/flagx"
	"github.com/avolkov/storefront/internal/timex"
)

// JsonConfig is the intermediate DTO for JSON config files. RequestTimeout
// uses timex.Duration so both "10s" strings and integer nanoseconds parse.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags onto cfg. Absent flag means no file is loaded; an unreadable or
// invalid file panics, as a broken config should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = c.ServerBaseURL
	cfg.DatabasePath = c.DatabasePath
	cfg.RequestTimeout = c.RequestTimeout.Duration
}
