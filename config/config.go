/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/itemfetch/datastore/ddb"
	"github.com/suparena/itemfetch/registry"
)

// Environment variables that override file settings.
const (
	EnvRegion    = "AWS_REGION"
	EnvEndpoint  = "AWS_DDB_ENDPOINT"
	EnvAccessKey = "AWS_ACCESS_KEY"
	EnvSecretKey = "AWS_SECRET_KEY"
)

// Config is the runtime configuration of the itemfetch tools.
type Config struct {
	Region         string        `yaml:"region"`
	Endpoint       string        `yaml:"endpoint"`
	AccessKey      string        `yaml:"access_key"`
	SecretKey      string        `yaml:"secret_key"`
	Timeout        time.Duration `yaml:"timeout"`
	ConsistentRead bool          `yaml:"consistent_read"`
	// Tables maps a table name to its partition key attribute.
	Tables map[string]string `yaml:"tables"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Region:  "us-east-2",
		Timeout: 10 * time.Second,
		Tables:  make(map[string]string),
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// skips the file. Environment overrides are applied afterwards.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings with non-empty environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvAccessKey); v != "" {
		c.AccessKey = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		c.SecretKey = v
	}
}

func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be greater than 0, got: %v", c.Timeout)
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	for table, attr := range c.Tables {
		if table == "" || attr == "" {
			return fmt.Errorf("tables: entry %q: %q is incomplete", table, attr)
		}
	}
	return nil
}

// ClientConfig returns the DynamoDB client settings.
func (c *Config) ClientConfig() ddb.ClientConfig {
	return ddb.ClientConfig{
		Region:    c.Region,
		Endpoint:  c.Endpoint,
		AccessKey: c.AccessKey,
		SecretKey: c.SecretKey,
	}
}

// RegisterTables records the configured key schemas in the registry.
func (c *Config) RegisterTables() error {
	for table, attr := range c.Tables {
		if err := registry.RegisterKeySchema(table, attr); err != nil {
			return err
		}
	}
	return nil
}
