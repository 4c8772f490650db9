package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	SSLMode            string `default:"disable"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

func (d DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Database, d.Port, d.SSLMode)
}

type Server struct {
	Port           int      `default:"8080"`
	AllowedOrigins []string `default:"*"`
}

type Catalog struct {
	PageSize       int `default:"12"`
	LatestCount    int `default:"8"`
	HighlightCount int `default:"5"`
}

type Auth struct {
	SecretKey string `validate:"required"`
	Audience  string
	Domain    string
}

type Config struct {
	DB      DB
	Server  Server
	Catalog Catalog
	Auth    Auth
}

const envPrefix = "WHISKYREVIEW" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.Catalog.PageSize < 1 {
		return nil, fmt.Errorf("%w: catalog page size must be positive, got %d", ErrConfiguration, config.Catalog.PageSize)
	}

	return &config, nil
}
