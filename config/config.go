package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Environment string `mapstructure:"APP_ENV"`
	Port        string `mapstructure:"PORT"`
	GinMode     string `mapstructure:"GIN_MODE"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	DBDriver   string `mapstructure:"DB_DRIVER"`
	SQLiteDSN  string `mapstructure:"SQLITE_DSN"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBName     string `mapstructure:"REYBANPAC_DB"`

	APIKey      string `mapstructure:"API_KEY"`
	GeminiModel string `mapstructure:"GEMINI_MODEL"`

	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
}

var defaults = map[string]any{
	"APP_ENV":        "development",
	"PORT":           "8080",
	"GIN_MODE":       "release",
	"LOG_LEVEL":      "info",
	"CORS_ORIGINS":   "*",
	"DB_DRIVER":      "sqlite",
	"SQLITE_DSN":     "file::memory:?cache=shared",
	"DB_USER":        "",
	"DB_PASSWORD":    "",
	"DB_HOST":        "127.0.0.1",
	"DB_PORT":        "3306",
	"REYBANPAC_DB":   "reybanpac",
	"API_KEY":        "",
	"GEMINI_MODEL":   "gemini-2.5-flash",
	"SESSION_SECRET": "",
	"SESSION_TTL":    "2h",
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if the .env file isn't found; variables may be set elsewhere
		log.Println("No .env file found or error loading .env file:", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return Config{}, err
		}
		log.Println("SESSION_SECRET is not set; chat session tokens will not survive a restart")
		cfg.SessionSecret = secret
	}

	return cfg, cfg.Validate()
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.SQLiteDSN == "" {
			return fmt.Errorf("SQLITE_DSN is required when DB_DRIVER=sqlite")
		}
	case "mysql":
		if c.DBUser == "" || c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_USER, DB_HOST and REYBANPAC_DB are required when DB_DRIVER=mysql")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
