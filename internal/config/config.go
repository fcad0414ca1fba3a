package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported relational drivers
const (
	DriverSQLServer = "sqlserver"
	DriverPostgres  = "postgres"
)

// Supported document store backends
const (
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"
)

// Config holds all application configuration
type Config struct {
	Env      string
	Port     string
	LogLevel string
	Database DatabaseConfig
	DocStore DocStoreConfig
}

// DatabaseConfig holds relational database configuration
type DatabaseConfig struct {
	Driver                 string
	Host                   string
	Port                   string
	Username               string
	Password               string
	Database               string
	Encrypt                bool
	TrustServerCertificate bool
	PoolMax                int // database/sql keeps no minimum, idle connections drain to zero
	IdleTimeout            time.Duration
}

// DocStoreConfig holds document store configuration
type DocStoreConfig struct {
	Backend         string
	CredentialsFile string
	ProjectID       string
	MongoURI        string
	MongoDatabase   string
	Collection      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	poolMax, err := getEnvInt("DB_POOL_MAX", 10)
	if err != nil {
		return nil, err
	}
	idle, err := getEnvDuration("DB_POOL_IDLE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverSQLServer))
	defaultDBPort := "1433"
	if driver == DriverPostgres {
		defaultDBPort = "5432"
	}

	return &Config{
		Env:      getEnv("APP_ENV", "production"),
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Driver:                 driver,
			Host:                   os.Getenv("DB_HOST"),
			Port:                   getEnv("DB_PORT", defaultDBPort),
			Username:               os.Getenv("DB_USER"),
			Password:               os.Getenv("DB_PASSWORD"),
			Database:               os.Getenv("DB_NAME"),
			Encrypt:                getEnv("DB_ENCRYPT", "true") == "true",
			TrustServerCertificate: getEnv("DB_TRUST_SERVER_CERT", "false") == "true",
			PoolMax:                poolMax,
			IdleTimeout:            idle,
		},
		DocStore: DocStoreConfig{
			Backend:         strings.ToLower(getEnv("DOCSTORE_BACKEND", BackendFirestore)),
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "./firebase-credentials.json"),
			ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
			MongoURI:        os.Getenv("MONGO_URI"),
			MongoDatabase:   os.Getenv("MONGO_DATABASE"),
			Collection:      getEnv("INSPECTIONS_COLLECTION", "inspections"),
		},
	}, nil
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.DocStore.Validate()
}

// IsDevelopment reports whether the process runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Validate checks the relational database settings
func (d DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLServer, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", d.Driver)
	}
	if d.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if d.Database == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if d.PoolMax < 1 {
		return fmt.Errorf("DB_POOL_MAX must be at least 1, got %d", d.PoolMax)
	}
	return nil
}

// DSN builds the driver specific connection string
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverPostgres {
		sslmode := "disable"
		if d.Encrypt {
			sslmode = "require"
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslmode,
		)
	}

	query := url.Values{}
	query.Set("database", d.Database)
	query.Set("encrypt", strconv.FormatBool(d.Encrypt))
	query.Set("TrustServerCertificate", strconv.FormatBool(d.TrustServerCertificate))

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     d.Host + ":" + d.Port,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// Validate checks the document store settings
func (d DocStoreConfig) Validate() error {
	if d.Collection == "" {
		return fmt.Errorf("INSPECTIONS_COLLECTION must not be empty")
	}
	switch d.Backend {
	case BackendFirestore:
		if d.CredentialsFile == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_FILE is required")
		}
	case BackendMongo:
		if d.MongoURI == "" || d.MongoDatabase == "" {
			return fmt.Errorf("MONGO_URI and MONGO_DATABASE are required for the mongo backend")
		}
	default:
		return fmt.Errorf("unsupported DOCSTORE_BACKEND %q", d.Backend)
	}
	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
