package hashgrid

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/hengadev/errsx"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds file-loadable configuration for SecureGrid construction.
//
// This struct contains only data, no behavior beyond validation. It can be
// populated from a YAML file via LoadConfig, or built in code and passed to
// SecureFromConfig.
//
// Example file:
//
//	argon2:
//	  memory: 65536
//	  iterations: 3
//	  parallelism: 2
//	  salt_length: 16
//	  key_length: 32
//	pepper_env: HASHGRID_PEPPER
type Config struct {
	// Argon2 sets the key derivation parameters. Fields left at zero are
	// filled from DefaultArgon2Params by LoadConfig.
	Argon2 Argon2Params `yaml:"argon2"`

	// PepperEnv names the environment variable holding the pepper as
	// standard base64 of exactly 32 bytes. When the variable is unset,
	// ResolvePepper loads a .env file from the working directory first.
	// Optional; empty means no pepper.
	PepperEnv string `yaml:"pepper_env"`
}

// DefaultConfig returns a configuration with default Argon2 parameters and
// no pepper.
func DefaultConfig() *Config {
	return &Config{Argon2: *DefaultArgon2Params()}
}

// LoadConfig loads configuration from a YAML file. Values absent from the
// file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs errsx.Map
	if err := c.Argon2.Validate(); err != nil {
		errs.Set("argon2", err)
	}
	if !errs.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, errs.AsError())
	}
	return nil
}

// ResolvePepper returns the pepper named by PepperEnv, or nil when no
// pepper is configured. When the environment variable is unset, a .env
// file in the working directory is consulted before failing.
func (c *Config) ResolvePepper() ([]byte, error) {
	if c.PepperEnv == "" {
		return nil, nil
	}
	value, ok := os.LookupEnv(c.PepperEnv)
	if !ok {
		_ = godotenv.Load()
		value, ok = os.LookupEnv(c.PepperEnv)
	}
	if !ok {
		return nil, fmt.Errorf("%w: environment variable %s is not set", ErrInvalidConfiguration, c.PepperEnv)
	}
	pepper, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid base64: %v", ErrInvalidConfiguration, c.PepperEnv, err)
	}
	if len(pepper) != 32 {
		return nil, fmt.Errorf("%w: pepper must decode to exactly 32 bytes, got %d", ErrInvalidConfiguration, len(pepper))
	}
	return pepper, nil
}

// SecureFromConfig creates a SecureGrid from a validated Config. Explicit
// options are applied after the config-derived ones and take precedence.
func SecureFromConfig(cfg *Config, opts ...Option) (*SecureGrid, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", ErrInvalidConfiguration)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params := cfg.Argon2
	built := []Option{WithArgon2Params(&params)}

	pepper, err := cfg.ResolvePepper()
	if err != nil {
		return nil, err
	}
	if pepper != nil {
		built = append(built, WithPepper(pepper))
	}

	return NewSecure(append(built, opts...)...)
}
