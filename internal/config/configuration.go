package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Monitor MonitorConfig `yaml:"monitor"`
}

type ServerConfig struct {
	Port        int       `yaml:"port"`
	Concurrency int       `yaml:"concurrency"`
	CORSOrigins []string  `yaml:"cors_origins"`
	LogConfig   LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type AuthConfig struct {
	Secret        string `yaml:"secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

type MonitorConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"`
}

// LoadConfiguration reads the YAML file and applies environment overrides.
// AUTH_SECRET and CORS_ORIGINS take precedence over the file so secrets can
// stay out of checked-in configuration.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if secret := os.Getenv("AUTH_SECRET"); secret != "" {
		config.Auth.Secret = secret
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		config.Server.CORSOrigins = strings.Split(origins, ",")
	}

	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Auth.TokenTTLHours == 0 {
		config.Auth.TokenTTLHours = 24
	}
	if config.Monitor.Schedule == "" {
		config.Monitor.Schedule = "0 8 * * *"
	}
	return &config, nil
}
