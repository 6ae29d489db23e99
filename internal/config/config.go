package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config interface {
	EnvConfig
	APIConfig
	SessionConfig
	CorsConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetMockPort() string
	GetMockSecret() string
	GetMockTokenExpiry() time.Duration
}

type mainConfig struct {
	EnvVars
	API
	Session
	Cors
}

// New loads an optional .env file and an optional YAML config file, then
// returns a Config whose getters read environment variables with defaults.
// Values from the YAML file are used only where the environment is unset.
func New() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}
	if path := os.Getenv(configFileEnvVar); path != "" {
		if err := LoadFile(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to load config file")
		}
	}
	return mainConfig{}
}

// fileConfig mirrors the environment variables a YAML config file may set.
type fileConfig struct {
	AppName        string `yaml:"app_name"`
	Env            string `yaml:"env"`
	LogLevel       string `yaml:"log_level"`
	APIBaseURL     string `yaml:"api_base_url"`
	RequestTimeout string `yaml:"request_timeout"`
	DataFolder     string `yaml:"data_folder"`
	MockPort       string `yaml:"mock_port"`
	MockSecret     string `yaml:"mock_secret"`
	MockTokenTTL   string `yaml:"mock_token_ttl"`
	CorsOrigins    string `yaml:"cors_origins"`
}

// LoadFile reads a YAML config file and exports its values as environment
// variables that are not already set.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	for envVar, value := range map[string]string{
		appNameVar:        fc.AppName,
		envVar:            fc.Env,
		logLevelVar:       fc.LogLevel,
		apiBaseURLVar:     fc.APIBaseURL,
		requestTimeoutVar: fc.RequestTimeout,
		folderEnvVar:      fc.DataFolder,
		mockPortVar:       fc.MockPort,
		mockSecretVar:     fc.MockSecret,
		mockTokenTTLVar:   fc.MockTokenTTL,
		corsOriginsVar:    fc.CorsOrigins,
	} {
		if value == "" || os.Getenv(envVar) != "" {
			continue
		}
		if err := os.Setenv(envVar, value); err != nil {
			return err
		}
	}
	return nil
}
