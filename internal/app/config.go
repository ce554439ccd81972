package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/utils"
)

type Config struct {
	Port                 string
	RegionBaseURL        string
	RegionTimeout        time.Duration
	RetryCount           int
	RetryDelay           time.Duration
	CacheTTL             time.Duration
	CreateContactChannel string
	CORSOrigins          []string
}

// fileConfig mirrors the optional YAML config file. Environment variables win
// over file values, which win over defaults.
type fileConfig struct {
	Port   string `yaml:"port"`
	Region struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		RetryCount     int    `yaml:"retry_count"`
		RetryDelayMS   int    `yaml:"retry_delay_ms"`
	} `yaml:"region"`
	Cache struct {
		TTLSeconds int `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Messaging struct {
		CreateContactChannel string `yaml:"create_contact_channel"`
	} `yaml:"messaging"`
	CORSOrigins []string `yaml:"cors_origins"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:                 "8080",
		RegionBaseURL:        "http://localhost:5000",
		RegionTimeout:        30 * time.Second,
		RetryCount:           3,
		RetryDelay:           4000 * time.Millisecond,
		CacheTTL:             5 * time.Minute,
		CreateContactChannel: "contact-insert",
		CORSOrigins:          []string{"http://localhost:3000"},
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		applyFileConfig(&cfg, fc)
		log.Info("Loaded config file", "path", path)
	}

	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.RegionBaseURL = utils.GetEnv("REGION_BASE_URL", cfg.RegionBaseURL, log)
	cfg.RegionTimeout = utils.GetEnvAsDuration("REGION_TIMEOUT", cfg.RegionTimeout, log)
	cfg.RetryCount = utils.GetEnvAsInt("REGION_RETRY_COUNT", cfg.RetryCount, log)
	cfg.RetryDelay = utils.GetEnvAsDuration("REGION_RETRY_DELAY", cfg.RetryDelay, log)
	cfg.CacheTTL = utils.GetEnvAsDuration("CACHE_TTL", cfg.CacheTTL, log)
	cfg.CreateContactChannel = utils.GetEnv("CREATE_CONTACT_CHANNEL", cfg.CreateContactChannel, log)
	if origins := utils.GetEnv("CORS_ORIGINS", "", log); origins != "" {
		cfg.CORSOrigins = splitAndTrim(origins)
	}

	return cfg, nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.Region.BaseURL != "" {
		cfg.RegionBaseURL = fc.Region.BaseURL
	}
	if fc.Region.TimeoutSeconds > 0 {
		cfg.RegionTimeout = time.Duration(fc.Region.TimeoutSeconds) * time.Second
	}
	if fc.Region.RetryCount > 0 {
		cfg.RetryCount = fc.Region.RetryCount
	}
	if fc.Region.RetryDelayMS > 0 {
		cfg.RetryDelay = time.Duration(fc.Region.RetryDelayMS) * time.Millisecond
	}
	if fc.Cache.TTLSeconds > 0 {
		cfg.CacheTTL = time.Duration(fc.Cache.TTLSeconds) * time.Second
	}
	if fc.Messaging.CreateContactChannel != "" {
		cfg.CreateContactChannel = fc.Messaging.CreateContactChannel
	}
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSOrigins = fc.CORSOrigins
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
