package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	appNameVar        = "APP_NAME"
	envVar            = "ENV"
	logLevelVar       = "LOG_LEVEL"
	folderEnvVar      = "FOLDER"
	apiBaseURLVar     = "API_BASE_URL"
	requestTimeoutVar = "REQUEST_TIMEOUT"
	mockPortVar       = "MOCK_PORT"
	mockSecretVar     = "MOCK_SECRET"
	mockTokenTTLVar   = "MOCK_TOKEN_TTL"
	corsOriginsVar    = "CORS_ORIGINS"
	configFileEnvVar  = "JOBBOARD_CONFIG"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Job Board")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv(envVar)
	if env == "" {
		return "DEV"
	}
	return env
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

// GetMockPort returns the listen address of the local mock backend
func (EnvVars) GetMockPort() string {
	port := GetEnv(mockPortVar, "3000")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

// GetMockSecret returns the HMAC secret the mock backend signs tokens with
func (EnvVars) GetMockSecret() string {
	return GetEnv(mockSecretVar, "jobboard-dev-secret")
}

// GetMockTokenExpiry returns how long tokens issued by the mock backend last
func (EnvVars) GetMockTokenExpiry() time.Duration {
	d, err := time.ParseDuration(GetEnv(mockTokenTTLVar, "24h"))
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetRequestTimeout() time.Duration
}

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the base URL of the job board REST API. It varies by build.
func (API) GetAPIBaseURL() string {
	return strings.TrimSuffix(GetEnv(apiBaseURLVar, "http://localhost:3000"), "/")
}

// GetRequestTimeout returns the per request timeout. Zero means no timeout.
func (API) GetRequestTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(requestTimeoutVar, "0s"))
	if err != nil || d < 0 {
		return 0
	}
	return d
}

type SessionConfig interface {
	GetDataFolder() string
	GetSessionFile() string
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetDataFolder() string {
	return GetEnv(folderEnvVar, defaultDataFolder())
}

func (s Session) GetSessionFile() string {
	return filepath.Join(s.GetDataFolder(), "session.json")
}

func defaultDataFolder() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "jobboard")
	}
	return "./data"
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
