package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

const defaultClientParallelism = 4

// ClientConfig holds the settings of the gateway command-line client.
type ClientConfig struct {
	// Address is the gateway base address; the scheme is optional.
	// Env: SECURE_DATA_ADDRESS
	Address string `env:"ADDRESS"`

	// Token is the bearer token sent with every request.
	// Env: SECURE_DATA_TOKEN
	Token string `env:"TOKEN"`

	// HashKey signs request bodies and verifies response signatures.
	// Env: SECURE_DATA_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Timeout bounds a single request.
	// Env: SECURE_DATA_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Parallelism is the number of event files executed at once.
	// Env: SECURE_DATA_PARALLELISM
	Parallelism int `env:"PARALLELISM"`

	// LogLevel is a zerolog level name.
	// Env: SECURE_DATA_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"SECURE_DATA_"`
}

// GetClientConfig merges environment variables over the flags in args and
// the defaults. It returns the positional arguments left after the flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	fromEnv, err := parseEnv[clientEnv]()
	if err != nil {
		return nil, nil, err
	}

	fromFlags, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{}
	for _, src := range []ClientConfig{fromEnv.Client, *fromFlags, {Parallelism: defaultClientParallelism, LogLevel: "info"}} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	return cfg, rest, nil
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("secure-data-client", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.Address, "a", "", "Gateway address")
	fs.StringVar(&cfg.Token, "t", "", "Bearer token")
	fs.StringVar(&cfg.HashKey, "k", "", "Request signing key")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.IntVar(&cfg.Parallelism, "p", 0, "Event files executed at once")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, fs.Args(), nil
}

func (c *ClientConfig) validate() error {
	if c.Address == "" {
		return fmt.Errorf("%w: gateway address is required", ErrInvalidClientConfigs)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be positive", ErrInvalidClientConfigs)
	}
	return nil
}
