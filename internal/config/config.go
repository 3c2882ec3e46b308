package config

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Version  string `envconfig:"APP_VERSION" default:"unknown"`

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"memory"`
	RedisAddress   string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	DatabaseURL    string `envconfig:"DB_CONNECTION_STRING"`

	PrivateKeyPath string        `envconfig:"PRIVATE_KEY_PATH" default:"/etc/certs/private.pem"`
	PublicKeyPath  string        `envconfig:"PUBLIC_KEY_PATH" default:"/etc/certs/public.pem"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	CookieSecure   bool          `envconfig:"COOKIE_SECURE" default:"false"`

	PlaceholderBaseURL string        `envconfig:"PLACEHOLDER_BASE_URL" default:"https://jsonplaceholder.typicode.com"`
	PlaceholderTimeout time.Duration `envconfig:"PLACEHOLDER_TIMEOUT" default:"10s"`

	RabbitMQURL       string `envconfig:"RABBITMQ_URL"`
	NotificationQueue string `envconfig:"NOTIFICATION_QUEUE" default:"appointment_notifications"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	AuthRateLimitRPS   float64  `envconfig:"AUTH_RATE_LIMIT_RPS" default:"5"`
	AuthRateLimitBurst int      `envconfig:"AUTH_RATE_LIMIT_BURST" default:"10"`

	JWTPrivateKey *rsa.PrivateKey `ignored:"true"`
	JWTPublicKey  *rsa.PublicKey  `ignored:"true"`
	// EphemeralKeys is set when no PEM files were found and a key pair was generated.
	EphemeralKeys bool `ignored:"true"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	switch cfg.StorageBackend {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DB_CONNECTION_STRING is required for the postgres storage backend")
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if err := cfg.loadKeys(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadKeys() error {
	privateKey, err := loadPrivateKey(c.PrivateKeyPath)
	if errors.Is(err, fs.ErrNotExist) {
		privateKey, err = rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			return fmt.Errorf("generate signing key: %w", err)
		}
		c.JWTPrivateKey = privateKey
		c.JWTPublicKey = &privateKey.PublicKey
		c.EphemeralKeys = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("load private key: %w", err)
	}

	publicKey, err := loadPublicKey(c.PublicKeyPath)
	if err != nil {
		return fmt.Errorf("load public key: %w", err)
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return errors.New("public key does not match private key")
	}

	c.JWTPrivateKey = privateKey
	c.JWTPublicKey = publicKey
	return nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	keyData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyData)
	if err != nil {
		return nil, err
	}
	return privateKey, nil
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	keyData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(keyData)
	if err != nil {
		return nil, err
	}
	return publicKey, nil
}
