package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Encryption struct {
		Key                  string `json:"key"`
		AllowInsecureDefault bool   `json:"allow_insecure_default"`
	} `json:"encryption,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		ReencryptInterval  Duration `json:"reencrypt_interval"`
		ReencryptBatchSize int      `json:"reencrypt_batch_size"`
	} `json:"workers,omitempty"`

	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`
}

// parseJSON reads the config file at path. Unknown keys are rejected so a
// misspelled option fails startup instead of being ignored.
func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var fileCfg StructuredJSONConfig
	if err := dec.Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (c *StructuredJSONConfig) toStructured() *StructuredConfig {
	var cfg StructuredConfig

	cfg.Encryption.Key = c.Encryption.Key
	cfg.Encryption.AllowInsecureDefault = c.Encryption.AllowInsecureDefault

	cfg.Auth.TokenSignKey = c.Auth.TokenSignKey
	cfg.Auth.TokenIssuer = c.Auth.TokenIssuer
	cfg.Auth.TokenDuration = time.Duration(c.Auth.TokenDuration)

	cfg.Storage.DB.DSN = c.Storage.DB.DSN

	cfg.Server.HTTPAddress = c.Server.HTTPAddress
	cfg.Server.RequestTimeout = time.Duration(c.Server.RequestTimeout)
	cfg.Server.ShutdownTimeout = time.Duration(c.Server.ShutdownTimeout)

	cfg.Workers.ReencryptInterval = time.Duration(c.Workers.ReencryptInterval)
	cfg.Workers.ReencryptBatchSize = c.Workers.ReencryptBatchSize

	cfg.App.Version = c.App.Version
	cfg.App.LogLevel = c.App.LogLevel

	return &cfg
}

// Duration is a time.Duration read from JSON either as a Go duration string
// ("90s", "1h30m") or as integer nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
