// Package config loads the server and CLI configuration from a YAML file
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable holding the config file path.
const FileEnv = "KATSUYO_CONFIG_FILE"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KATSUYO"

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Lexicon LexiconConfig `json:"lexicon" yaml:"lexicon"`
	Drill   DrillConfig   `json:"drill" yaml:"drill"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Addr        string   `json:"addr" yaml:"addr"`
	LogLevel    string   `json:"log_level" yaml:"log_level"`
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins"`
	MetricsPath string   `json:"metrics_path" yaml:"metrics_path"`
}

// LexiconConfig locates the verb list
type LexiconConfig struct {
	// DataDir holds verbs.txt. Empty means the built-in sample verbs.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// DrillConfig configures drill challenges and their history
type DrillConfig struct {
	// HistoryPath is the SQLite database file. Empty keeps history in memory.
	HistoryPath       string `json:"history_path" yaml:"history_path"`
	MaxOpenChallenges int    `json:"max_open_challenges" yaml:"max_open_challenges"`
}

// Default returns the configuration used when no file or override is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			LogLevel:    "info",
			CORSOrigins: []string{"*"},
			MetricsPath: "/metrics",
		},
		Drill: DrillConfig{
			MaxOpenChallenges: 1024,
		},
	}
}

// NewConfig loads configuration from the YAML file named by
// KATSUYO_CONFIG_FILE (if any), then overrides with environment variables.
func NewConfig() (*Config, error) {
	return Load(os.Getenv(FileEnv))
}

// Load reads path over the defaults and applies environment overrides.
// An empty path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := overrideStructFromEnvWithPrefix(cfg, EnvPrefix); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must be set")
	}
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("server.log_level %q: want debug, info, warn or error", c.Server.LogLevel)
	}
	if c.Drill.MaxOpenChallenges <= 0 {
		return fmt.Errorf("drill.max_open_challenges must be positive, got %d", c.Drill.MaxOpenChallenges)
	}
	return nil
}

// overrideStructFromEnvWithPrefix recursively overrides struct fields with
// environment variables named PREFIX_SECTION_FIELD after the yaml tags.
// Values that do not parse as the field's type are collected and returned.
func overrideStructFromEnvWithPrefix(v interface{}, prefix string) error {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	var errs []error

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		yamlTag := strings.Split(typ.Field(i).Tag.Get("yaml"), ",")[0]
		if !field.CanSet() || yamlTag == "" || yamlTag == "-" {
			continue
		}

		envKey := strings.ToUpper(strings.ReplaceAll(yamlTag, "-", "_"))
		if prefix != "" {
			envKey = prefix + "_" + envKey
		}
		envVal, ok := os.LookupEnv(envKey)

		switch field.Kind() {
		case reflect.Struct:
			if err := overrideStructFromEnvWithPrefix(field.Addr().Interface(), envKey); err != nil {
				errs = append(errs, err)
			}
		case reflect.String:
			if ok {
				field.SetString(envVal)
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if ok {
				n, err := strconv.ParseInt(strings.TrimSpace(envVal), 10, field.Type().Bits())
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %q is not an integer", envKey, envVal))
					continue
				}
				field.SetInt(n)
			}
		case reflect.Slice:
			if ok && field.Type().Elem().Kind() == reflect.String {
				var items []string
				for _, s := range strings.Split(envVal, ",") {
					if s = strings.TrimSpace(s); s != "" {
						items = append(items, s)
					}
				}
				field.Set(reflect.ValueOf(items))
			}
		}
	}
	return errors.Join(errs...)
}
