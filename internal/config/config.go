package config

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	PeopleAPI PeopleAPIConfig `yaml:"people_api"`
	Web       WebConfig       `yaml:"web"`
	Log       LogConfig       `yaml:"log"`
	UI        UIConfig        `yaml:"ui"`
}

type PeopleAPIConfig struct {
	URL        string        `yaml:"url"`     // base URL of the people endpoint
	Path       string        `yaml:"path"`    // path of the list below URL (e.g. people.json)
	Timeout    time.Duration `yaml:"timeout"` // per-request timeout
	Delay      time.Duration `yaml:"delay"`   // artificial latency before each request, 0 disables it
	CaptureDir string        `yaml:"capture_dir"`
}

type WebConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Addr returns the listen address.
func (c WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

type UIConfig struct {
	Title           string        `yaml:"title"`
	RefreshInterval time.Duration `yaml:"refresh_interval"` // reload interval of the loader page
	Centuries       []string      `yaml:"centuries"`
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"people_api.url":         "PEOPLE_API_URL",
	"people_api.path":        "PEOPLE_API_PATH",
	"people_api.timeout":     "PEOPLE_API_TIMEOUT",
	"people_api.delay":       "PEOPLE_API_DELAY",
	"people_api.capture_dir": "PEOPLE_API_CAPTURE_DIR",
	"web.host":               "WEB_HOST",
	"web.port":               "WEB_PORT",
	"web.allowed_origins":    "WEB_ALLOWED_ORIGINS",
	"log.level":              "LOG_LEVEL",
	"log.format":             "LOG_FORMAT",
}

// Defaults returns the configuration embedded in the binary.
func Defaults() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}
	return &cfg
}

// Load returns the embedded defaults overridden by environment variables.
func Load() (*Config, error) {
	defaults := Defaults()

	v := viper.New()
	v.SetDefault("people_api.url", defaults.PeopleAPI.URL)
	v.SetDefault("people_api.path", defaults.PeopleAPI.Path)
	v.SetDefault("people_api.timeout", defaults.PeopleAPI.Timeout)
	v.SetDefault("people_api.delay", defaults.PeopleAPI.Delay)
	v.SetDefault("people_api.capture_dir", defaults.PeopleAPI.CaptureDir)
	v.SetDefault("web.host", defaults.Web.Host)
	v.SetDefault("web.port", defaults.Web.Port)
	v.SetDefault("web.allowed_origins", defaults.Web.AllowedOrigins)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	cfg := &Config{
		PeopleAPI: PeopleAPIConfig{
			URL:        strings.TrimRight(v.GetString("people_api.url"), "/"),
			Path:       strings.TrimLeft(v.GetString("people_api.path"), "/"),
			Timeout:    v.GetDuration("people_api.timeout"),
			Delay:      v.GetDuration("people_api.delay"),
			CaptureDir: v.GetString("people_api.capture_dir"),
		},
		Web: WebConfig{
			Host:           v.GetString("web.host"),
			Port:           v.GetInt("web.port"),
			AllowedOrigins: splitList(v.GetStringSlice("web.allowed_origins")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		UI: defaults.UI,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values a running server depends on.
func (c *Config) Validate() error {
	if c.PeopleAPI.URL == "" {
		return fmt.Errorf("PEOPLE_API_URL must not be empty")
	}
	if c.PeopleAPI.Timeout <= 0 {
		return fmt.Errorf("PEOPLE_API_TIMEOUT must be positive, got %s", c.PeopleAPI.Timeout)
	}
	if c.PeopleAPI.Delay < 0 {
		return fmt.Errorf("PEOPLE_API_DELAY must not be negative, got %s", c.PeopleAPI.Delay)
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("WEB_PORT out of range: %d", c.Web.Port)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// splitList accepts both repeated values and a single comma separated value.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for item := range strings.SplitSeq(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
