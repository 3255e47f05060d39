// Package config loads the console configuration from an optional YAML
// file layered over built-in defaults. Flags and environment variables are
// applied on top by the binaries.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Wallet query capability modes. The mode decides at startup which
// implementation backs menu option 2: the live RPC flow or the disabled
// stub that only prints how to turn the capability on.
const (
	QueryEnabled  = "enabled"
	QueryDisabled = "disabled"
)

// Default endpoints point at the public Solana devnet.
const (
	DefaultRPCEndpoint = "https://api.devnet.solana.com"
	DefaultWSEndpoint  = "wss://api.devnet.solana.com"

	// DefaultKeypairPath is where solana-keygen writes the id file.
	DefaultKeypairPath = "~/.config/solana/id.json"
)

// Duration is a time.Duration that unmarshals from Go duration strings
// ("30s", "1m"), which plain yaml.v3 does not do for time.Duration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the root of the console configuration.
type Config struct {
	RPC    RPCConfig    `yaml:"rpc"`
	Wallet WalletConfig `yaml:"wallet"`
	Log    LogConfig    `yaml:"log"`
}

// RPCConfig configures the remote ledger endpoints.
type RPCConfig struct {
	Endpoint       string   `yaml:"endpoint"`
	WSEndpoint     string   `yaml:"ws_endpoint"`
	RequestTimeout Duration `yaml:"request_timeout"`
}

// WalletConfig configures the keystore and the query capability mode.
type WalletConfig struct {
	KeypairPath string `yaml:"keypair_path"`
	Query       string `yaml:"query"` // QueryEnabled or QueryDisabled
}

// LogConfig configures console logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RPC: RPCConfig{
			Endpoint:       DefaultRPCEndpoint,
			WSEndpoint:     DefaultWSEndpoint,
			RequestTimeout: Duration(30 * time.Second),
		},
		Wallet: WalletConfig{
			KeypairPath: DefaultKeypairPath,
			Query:       QueryEnabled,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields a typo would most likely corrupt.
func (c *Config) Validate() error {
	switch c.Wallet.Query {
	case QueryEnabled, QueryDisabled:
	default:
		return fmt.Errorf("wallet.query must be %q or %q, got %q",
			QueryEnabled, QueryDisabled, c.Wallet.Query)
	}
	if c.RPC.Endpoint == "" {
		return fmt.Errorf("rpc.endpoint must not be empty")
	}
	if c.RPC.RequestTimeout < 0 {
		return fmt.Errorf("rpc.request_timeout must not be negative")
	}
	return nil
}
