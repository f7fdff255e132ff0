package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CorsOrigins       string `mapstructure:"CORS_ORIGINS"`

	// Upstream REST backend.
	BackendURL            string `mapstructure:"BACKEND_URL"`
	BackendTimeoutSeconds int    `mapstructure:"BACKEND_TIMEOUT_SECONDS"`
	UploadPath            string `mapstructure:"UPLOAD_PATH"`

	// Consultant emails must be on this domain so meeting invites can be delivered.
	AllowedEmailDomain string `mapstructure:"ALLOWED_EMAIL_DOMAIN"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB    int    `mapstructure:"REDIS_SESSION_DB"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// MongoDB holds the slot replacement journal. "memory://" keeps it in process.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Media storage: "backend" forwards to the upload endpoint, "cloudinary" uploads directly.
	StorageDriver       string `mapstructure:"STORAGE_DRIVER"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`
}

var AppConfig Config

var defaults = map[string]any{
	"APP_PORT":                "8080",
	"ENV":                     "development",
	"LOG_LEVEL":               "info",
	"MAX_REQUESTS_PER_MIN":    100,
	"CORS_ORIGINS":            "*",
	"BACKEND_URL":             "http://localhost:5000",
	"BACKEND_TIMEOUT_SECONDS": 15,
	"UPLOAD_PATH":             "/api/upload",
	"ALLOWED_EMAIL_DOMAIN":    "gmail.com",
	"REDIS_ADDR":              "localhost:6379",
	"REDIS_PASSWORD":          "",
	"REDIS_SESSION_DB":        1,
	"SESSION_TTL_MINUTES":     720,
	"DATABASE_URL":            "memory://",
	"DATABASE_NAME":           "mindbloom",
	"STORAGE_DRIVER":          "backend",
	"CLOUDINARY_CLOUD_NAME":   "",
	"CLOUDINARY_API_KEY":      "",
	"CLOUDINARY_API_SECRET":   "",
	"CLOUDINARY_FOLDER":       "mindbloom",
}

// LoadConfig fills AppConfig from config.yaml (current or ./config directory) and the environment.
func LoadConfig() {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	cfg, err := Load(v)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load applies defaults and environment overrides to v and decodes the result.
func Load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// BackendTimeout is the per-request timeout for calls to the backend.
func (c Config) BackendTimeout() time.Duration {
	if c.BackendTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.BackendTimeoutSeconds) * time.Second
}

// SessionTTL is how long an operator session lives without a token expiry to bound it.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CorsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
