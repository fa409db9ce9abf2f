// Package config loads the portfolio configuration from a YAML file, a .env
// file and the environment, in that order of increasing precedence.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all portfolio configuration.
type Config struct {
	Server   ServerConfig `yaml:"server"`
	Frontend Frontend     `yaml:"frontend"`
	Sheet    SheetConfig  `yaml:"sheet"`
	Admin    AdminConfig  `yaml:"admin"`
	Log      LogConfig    `yaml:"log"`
}

// ServerConfig configures the page server.
type ServerConfig struct {
	Port         string `yaml:"port"`
	TemplateGlob string `yaml:"template_glob"`
	StaticDir    string `yaml:"static_dir"`
	ImagesDir    string `yaml:"images_dir"`
}

// Frontend is the part of the configuration the browser code needs. It is
// embedded into the rendered page as JSON.
type Frontend struct {
	// ContactEndpoint receives contact form submissions. A relative URL
	// is resolved against the page.
	ContactEndpoint string `yaml:"contact_endpoint" json:"contact_endpoint"`

	// Phrases cycle through the hero banner.
	Phrases []string `yaml:"phrases" json:"phrases"`

	// Breakpoint is the widest viewport, in px, that uses the overlay
	// sidebar.
	Breakpoint float64 `yaml:"breakpoint" json:"breakpoint"`

	// SubmitTimeout bounds one contact form submission.
	SubmitTimeout Duration `yaml:"submit_timeout" json:"submit_timeout"`
}

// SheetConfig configures the local stand-in for the sheet endpoint.
type SheetConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// AdminConfig holds the admin login.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Duration is a time.Duration that reads and writes as a string such as
// "15s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	return d.parse(string(text))
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// DefaultPhrases are the hero banner phrases.
var DefaultPhrases = []string{
	"Full Stack Developer",
	"UI/UX Designer",
	"Problem Solver",
	"Creative Thinker",
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			TemplateGlob: "templates/*",
			StaticDir:    "./static",
			ImagesDir:    "./images",
		},
		Frontend: DefaultFrontend(),
		Sheet: SheetConfig{
			Enabled: true,
			DBPath:  "portfolio.db",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultFrontend returns the browser defaults. The endpoint defaults to the
// local sheet stand-in.
func DefaultFrontend() Frontend {
	return Frontend{
		ContactEndpoint: "/sheet/exec",
		Phrases:         append([]string(nil), DefaultPhrases...),
		Breakpoint:      1024,
		SubmitTimeout:   Duration(15 * time.Second),
	}
}

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty), the .env file in the working directory if present,
// and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// A missing .env is the normal production case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Server.Port, "PORT")
	set(&c.Frontend.ContactEndpoint, "CONTACT_ENDPOINT")
	set(&c.Sheet.DBPath, "SHEET_DB_PATH")
	set(&c.Admin.Username, "ADMIN_USERNAME")
	set(&c.Admin.Password, "ADMIN_PASSWORD")
	set(&c.Log.Level, "LOG_LEVEL")
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("%w: server port is empty", ErrInvalid)
	}
	return c.Frontend.Validate()
}

// Validate checks the browser configuration.
func (f Frontend) Validate() error {
	if len(f.Phrases) == 0 {
		return fmt.Errorf("%w: no typing phrases", ErrInvalid)
	}
	for i, p := range f.Phrases {
		if p == "" {
			return fmt.Errorf("%w: typing phrase %d is empty",
				ErrInvalid, i)
		}
	}
	if f.Breakpoint <= 0 {
		return fmt.Errorf("%w: breakpoint must be positive", ErrInvalid)
	}
	if f.SubmitTimeout <= 0 {
		return fmt.Errorf("%w: submit timeout must be positive",
			ErrInvalid)
	}
	if f.ContactEndpoint == "" {
		return fmt.Errorf("%w: contact endpoint is empty", ErrInvalid)
	}
	return nil
}

// ResolveEndpoint returns the contact endpoint as an absolute URL, resolving
// a relative endpoint against base.
func (f Frontend) ResolveEndpoint(base string) (string, error) {
	ref, err := url.Parse(f.ContactEndpoint)
	if err != nil {
		return "", fmt.Errorf("%w: contact endpoint: %v", ErrInvalid, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	return b.ResolveReference(ref).String(), nil
}

// ParseFrontend decodes the browser configuration embedded in the page.
// Fields missing from data keep their defaults.
func ParseFrontend(data []byte) (Frontend, error) {
	f := DefaultFrontend()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("%w: frontend config: %v", ErrInvalid, err)
		}
	}
	return f, f.Validate()
}
