package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a listen address given on the command line. It implements
// [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), an IPv4 or
// bracketed IPv6 address, or a host name; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", rawPort)
	}

	if host != "" && net.ParseIP(host) == nil && !validHostname(host) {
		return fmt.Errorf("invalid host %q", host)
	}

	a.Host, a.Port = host, port
	return nil
}

func validHostname(host string) bool {
	if len(host) > 253 {
		return false
	}
	for _, r := range host {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
		default:
			return false
		}
	}
	return true
}

var errUnexpectedArgs = errors.New("unexpected positional arguments")

// parseFlags parses the server command line into a config holding only the
// values that were set.
//
// Flags:
//
//	-a listen address host:port
//	-d database DSN
//	-k encryption key
//	-allow-insecure-key allow the well-known default encryption key
//	-c / -config JSON config file path
//	-token-sign-key, -token-issuer, -token-duration
//	-request-timeout, -shutdown-timeout
//	-reencrypt-interval, -reencrypt-batch-size
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg  StructuredConfig
		addr NetAddress
	)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&addr, "a", "Listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN (postgres:// URI or SQLite path)")
	fs.StringVar(&cfg.Encryption.Key, "k", "", "Encryption key")
	fs.BoolVar(&cfg.Encryption.AllowInsecureDefault, "allow-insecure-key", false, "Allow the insecure default encryption key")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Token lifetime (e.g., 1h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Workers.ReencryptInterval, "reencrypt-interval", 0, "Legacy plaintext sweep period (e.g., 10m)")
	fs.IntVar(&cfg.Workers.ReencryptBatchSize, "reencrypt-batch-size", 0, "Rows encrypted per table and sweep")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", errUnexpectedArgs, fs.Args())
	}

	cfg.Server.HTTPAddress = addr.String()
	return &cfg, nil
}
