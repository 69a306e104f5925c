package config

import (
	"encoding/json"
	"os"

	"github.com/avolkov/storefront/internal/flagx"
	"github.com/avolkov/storefront/internal/timex"
)

// JsonConfig is the intermediate DTO for JSON config files. TokenTTL uses
// timex.Duration so both "24h" strings and integer nanoseconds parse.
type JsonConfig struct {
	EndpointAddr string         `json:"endpoint_addr"`
	DatabaseDSN  string         `json:"database_dsn"`
	SecretKey    string         `json:"secret_key"`
	TokenTTL     timex.Duration `json:"token_ttl"`
	Env          string         `json:"env"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags onto config. Absent flag means no file is loaded; an unreadable or
// invalid file panics, as a broken config should stop startup.
func parseJson(config *Config) {
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

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenTTL = c.TokenTTL.Duration
	config.Env = c.Env
}
