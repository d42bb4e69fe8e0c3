package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	DSN     string `yaml:"dsn"`
	LogMode bool   `yaml:"log_mode"`
}

type SessionConfig struct {
	CookieName string `yaml:"cookie_name"`
	TTLMinutes int    `yaml:"ttl_minutes"`
	Secure     bool   `yaml:"secure"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AdminConfig seeds the singleton admin credential at startup. When
// PasswordHash is set it takes precedence over Password and login switches
// to bcrypt comparison.
type AdminConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	CORS     CORSConfig     `yaml:"cors"`
	Admin    AdminConfig    `yaml:"admin"`
}

// TTL returns the session lifetime as a duration.
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// Load reads the YAML config file at path, then applies environment
// overrides. A missing file is not an error; defaults plus environment
// are enough to run.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 60
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "insure.sid"
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 5000},
		Session: SessionConfig{
			CookieName: "insure.sid",
			TTLMinutes: 60,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:5500",
				"http://127.0.0.1:5500",
			},
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.TTLMinutes = n
		}
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Admin.PasswordHash = v
	}
}
