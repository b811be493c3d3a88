package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the server needs at startup.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Sanity SanityConfig `yaml:"sanity"`
	SMTP   SMTPConfig   `yaml:"smtp"`
	CORS   CORSConfig   `yaml:"cors"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SanityConfig identifies the content store project. ProjectID is the only
// required value; the read token is optional for public datasets.
type SanityConfig struct {
	ProjectID  string `yaml:"projectId"`
	Dataset    string `yaml:"dataset"`
	APIVersion string `yaml:"apiVersion"`
	Token      string `yaml:"token"`
	UseCDN     bool   `yaml:"useCdn"`
}

// SMTPConfig configures the outbound mail account for the contact form.
// User and Pass come from the environment; their absence is reported when a
// send is attempted, not at load time.
type SMTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	To   string `yaml:"to"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment values win over file values.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Sanity: SanityConfig{
			Dataset:    "production",
			APIVersion: "2024-01-01",
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		CORS: CORSConfig{
			Origins: []string{"http://localhost:3000"},
		},
	}

	if path := os.Getenv("PORTFOLIO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Server.Port = port
	}

	if v := os.Getenv("SANITY_PROJECT_ID"); v != "" {
		cfg.Sanity.ProjectID = v
	}
	if v := os.Getenv("SANITY_DATASET"); v != "" {
		cfg.Sanity.Dataset = v
	}
	if v := os.Getenv("SANITY_API_VERSION"); v != "" {
		cfg.Sanity.APIVersion = v
	}
	if v := os.Getenv("SANITY_API_TOKEN"); v != "" {
		cfg.Sanity.Token = v
	}
	if v := os.Getenv("SANITY_USE_CDN"); v != "" {
		cfg.Sanity.UseCDN = v == "true" || v == "1"
	}

	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.SMTP.Port = v
	}
	if v := os.Getenv("GMAIL_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("GMAIL_APP_PASSWORD"); v != "" {
		cfg.SMTP.Pass = v
	}
	if v := os.Getenv("CONTACT_TO"); v != "" {
		cfg.SMTP.To = v
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.SMTP.User
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORS.Origins = origins
	}

	return cfg, nil
}

// Validate reports configuration the server cannot start without.
func (c Config) Validate() error {
	if c.Sanity.ProjectID == "" {
		return fmt.Errorf("SANITY_PROJECT_ID must be set")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
