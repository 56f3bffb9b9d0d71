// Package config deals with client configuration files.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top level struct representing a daemon connection
// configuration. It maps one to one onto rpcclient.Options plus the
// connection credentials.
type Config struct {
	// Endpoint is the HTTP URL of the daemon's JSON-RPC interface.
	Endpoint string `yaml:"Endpoint"`
	Username string `yaml:"Username"`
	// Password can be left empty in the file and supplied interactively.
	Password       string            `yaml:"Password"`
	DialTimeout    time.Duration     `yaml:"DialTimeout"`
	RequestTimeout time.Duration     `yaml:"RequestTimeout"`
	Headers        map[string]string `yaml:"Headers"`
}

// Load attempts to load the config from the given path.
func Load(path string) (Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	return LoadRawConfig(configData)
}

// LoadRawConfig unmarshals the given bytes into a Config and validates it.
func LoadRawConfig(data []byte) (Config, error) {
	config := Config{}
	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	err = config.Validate()
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks Config for internal consistency.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("empty Endpoint")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid Endpoint: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("invalid Endpoint scheme %q", u.Scheme)
	}
	if c.DialTimeout < 0 {
		return fmt.Errorf("negative DialTimeout")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("negative RequestTimeout")
	}
	return nil
}
