package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel        int      `env:"LOG_LEVEL" envDefault:"0"`
	StrictMutations bool     `env:"STRICT_MUTATIONS" envDefault:"false"`
	LogFile         LogFile  `envPrefix:"LOG_FILE_"`
	HTTP            HTTP     `envPrefix:"HTTP_"`
	Database        Database `envPrefix:"DATABASE_"`
	Health          Health   `envPrefix:"HEALTH_"`
}

// LogFile contains rotating log file parameters. Empty Path means stdout.
type LogFile struct {
	Path       string `env:"PATH"`
	MaxSize    int    `env:"MAX_SIZE" envDefault:"100"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAge     int    `env:"MAX_AGE" envDefault:"28"`
	Compress   bool   `env:"COMPRESS" envDefault:"false"`
}

// HTTP contains request server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	Namespace          string        `env:"NAMESPACE"`
	MaxRequestBytes    int64         `env:"MAX_REQUEST_BYTES" envDefault:"65536"`
	Sequential         bool          `env:"SEQUENTIAL" envDefault:"false"`
	MaxConnections     int64         `env:"MAX_CONNECTIONS" envDefault:"64"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
}

// Database contains database connection parameters.
type Database struct {
	URL            string `env:"URL,required,notEmpty"`
	MaxConns       int32  `env:"MAX_CONNS" envDefault:"10"`
	ConnectRetries uint64 `env:"CONNECT_RETRIES" envDefault:"5"`
}

// Health contains gRPC health endpoint parameters.
type Health struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Port     string        `env:"PORT" envDefault:"50051"`
	Interval time.Duration `env:"INTERVAL" envDefault:"10s"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
