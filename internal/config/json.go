package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avasiljevs/learnkeeper/internal/flagx"
	"github.com/avasiljevs/learnkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "720h" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN string         `json:"database_dsn"`
	StoreSecret string         `json:"store_secret"`
	GrantSecret string         `json:"grant_secret"`
	GrantTTL    timex.Duration `json:"grant_ttl"`
	LoginDelay  timex.Duration `json:"login_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); if neither is set, no JSON is loaded. Read or
// unmarshal errors panic (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.StoreSecret != "" {
		cfg.StoreSecret = jc.StoreSecret
	}
	if jc.GrantSecret != "" {
		cfg.GrantSecret = jc.GrantSecret
	}
	if jc.GrantTTL.Duration != 0 {
		cfg.GrantTTL = time.Duration(jc.GrantTTL.Duration)
	}
	if jc.LoginDelay.Duration != 0 {
		cfg.LoginDelay = time.Duration(jc.LoginDelay.Duration)
	}
}
