package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	SMTP       SMTPConfig
	Recognizer RecognizerConfig
	Kiosk      KioskConfig
}

type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// RecognizerConfig points at the external face-matching service.
type RecognizerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// KioskConfig holds timings for the kiosk terminal session.
type KioskConfig struct {
	APIBaseURL      string
	CameraStreamURL string
	ScanInterval    time.Duration
	ScanDwell       time.Duration
	DisplayDuration time.Duration
	RequestTimeout  time.Duration
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; variables may come
	// from the process environment directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
	}

	recognizerTimeout, err := time.ParseDuration(getEnv("RECOGNIZER_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOGNIZER_TIMEOUT: %w", err)
	}

	config.Recognizer = RecognizerConfig{
		BaseURL: getEnv("RECOGNIZER_URL", "http://localhost:8001"),
		Timeout: recognizerTimeout,
	}

	kiosk, err := loadKioskConfig()
	if err != nil {
		return nil, err
	}
	config.Kiosk = kiosk

	return config, nil
}

func loadKioskConfig() (KioskConfig, error) {
	cfg := KioskConfig{
		APIBaseURL:      getEnv("KIOSK_API_URL", "http://localhost:8080"),
		CameraStreamURL: getEnv("KIOSK_CAMERA_URL", ""),
	}

	for _, d := range []struct {
		dst      *time.Duration
		key      string
		fallback string
	}{
		{&cfg.ScanInterval, "KIOSK_SCAN_INTERVAL", "2500ms"},
		{&cfg.ScanDwell, "KIOSK_SCAN_DWELL", "1200ms"},
		{&cfg.DisplayDuration, "KIOSK_DISPLAY_DURATION", "5s"},
		{&cfg.RequestTimeout, "KIOSK_REQUEST_TIMEOUT", "5s"},
	} {
		v, err := time.ParseDuration(getEnv(d.key, d.fallback))
		if err != nil {
			return KioskConfig{}, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = v
	}

	return cfg, nil
}

// ValidateServer checks the settings the API server consumes. The kiosk
// binary never connects to the database, so it skips these.
func (c *Config) ValidateServer() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// ValidateKiosk checks the settings the kiosk terminal consumes.
func (c *Config) ValidateKiosk() error {
	if c.Kiosk.CameraStreamURL == "" {
		return fmt.Errorf("KIOSK_CAMERA_URL is required")
	}
	// A hung recognizer request must not block the next capture tick forever.
	if c.Kiosk.RequestTimeout <= c.Kiosk.ScanInterval {
		return fmt.Errorf("KIOSK_REQUEST_TIMEOUT must be longer than KIOSK_SCAN_INTERVAL")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
