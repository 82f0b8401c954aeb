package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// Token is a bearer token from an earlier login.
	// Env: CLIENT_TOKEN
	Token string `env:"CLIENT_TOKEN"`

	// LogLevel is a zerolog level name. Empty means warn.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

// ClientAdapter holds how the client reaches the server.
type ClientAdapter struct {
	// HTTPAddress is the server base URL; the scheme may be omitted.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds one API call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func clientDefaults() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		LogLevel: "warn",
	}
}

// GetClientConfig merges defaults, environment variables and the flags at
// the front of args, in that priority order. It returns the arguments left
// after the flags, which name the command to run.
//
// Flags:
//
//	-a server address
//	-t bearer token
//	-timeout request timeout (e.g., "15s")
//	-log-level zerolog level name
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, nil, err
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.StringVar(&flagCfg.Token, "t", "", "Bearer token")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "Log level")
	if err = fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{clientDefaults(), envCfg, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, fs.Args(), nil
}
