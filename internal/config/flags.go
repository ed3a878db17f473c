package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// statusCodes is a comma separated list of integers.
// It implements the flag.Value interface.
type statusCodes []int

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a                    gateway address in format [host]:[port]
//	-d                    database DSN
//	-driver               database driver ("pgx" or "sqlite3")
//	-c/-config            json file path with configs
//	-token-sign-key       host token signing key
//	-token-issuer         host token issuer name
//	-request-timeout      request timeout (e.g., "30s", "1m")
//	-mask-text            placeholder of secured descriptions
//	-denied-text          placeholder returned when the vault is not readable
//	-visible-status-codes status codes that reveal the description (e.g., "6,7")
//	-k                    response signing key
//	-log-level            log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var visible statusCodes
	var (
		databaseDSN    string
		databaseDriver string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		requestTimeout time.Duration
		maskText       string
		deniedText     string
		hashKey        string
		logLevel       string
	)

	fs := flag.NewFlagSet("secure-data", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&maskText, "mask-text", "", "Placeholder of secured descriptions")
	fs.StringVar(&deniedText, "denied-text", "", "Placeholder returned when access to secure data is denied")
	fs.Var(&visible, "visible-status-codes", "Status codes that reveal secured descriptions (e.g., 6,7)")
	fs.StringVar(&hashKey, "k", "", "Response signing key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			HashKey:      hashKey,
			LogLevel:     logLevel,
		},
		Redaction: Redaction{
			MaskText:           maskText,
			DeniedText:         deniedText,
			VisibleStatusCodes: visible,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string for the zero address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be "localhost", an IP address or
// empty (all interfaces); the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func (s *statusCodes) String() string {
	parts := make([]string, 0, len(*s))
	for _, code := range *s {
		parts = append(parts, strconv.Itoa(code))
	}
	return strings.Join(parts, ",")
}

func (s *statusCodes) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		code, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid status code %q: %w", part, err)
		}
		*s = append(*s, code)
	}
	return nil
}
