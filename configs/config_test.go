package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/WhiskyReview/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal([]string{"https://whisky.example"}, config.Server.AllowedOrigins)
	suite.Equal(24, config.Catalog.PageSize)
	suite.Equal(8, config.Catalog.LatestCount)
	suite.Equal(5, config.Catalog.HighlightCount)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("WHISKYREVIEW_DB_HOST", "test.local")
	suite.T().Setenv("WHISKYREVIEW_DB_PORT", "1234")
	suite.T().Setenv("WHISKYREVIEW_DB_USER", "testuser")
	suite.T().Setenv("WHISKYREVIEW_DB_PASSWORD", "test123")
	suite.T().Setenv("WHISKYREVIEW_DB_DATABASE", "testdb")
	suite.T().Setenv("WHISKYREVIEW_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("WHISKYREVIEW_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("WHISKYREVIEW_SERVER_PORT", "666")
	suite.T().Setenv("WHISKYREVIEW_CATALOG_PAGESIZE", "6")
	suite.T().Setenv("WHISKYREVIEW_AUTH_AUDIENCE", "audience")
	suite.T().Setenv("WHISKYREVIEW_AUTH_DOMAIN", "domain")
	suite.T().Setenv("WHISKYREVIEW_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal(6, config.Catalog.PageSize)
	suite.Equal("audience", config.Auth.Audience)
	suite.Equal("domain", config.Auth.Domain)
	suite.Equal("secret", config.Auth.SecretKey)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("WHISKYREVIEW_DB_HOST", "env.local")
	suite.T().Setenv("WHISKYREVIEW_DB_USER", "envuser")
	suite.T().Setenv("WHISKYREVIEW_DB_PASSWORD", "env123")
	suite.T().Setenv("WHISKYREVIEW_CATALOG_PAGESIZE", "9")
	suite.T().Setenv("WHISKYREVIEW_AUTH_SECRETKEY", "envsecret")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(9, config.Catalog.PageSize)
	suite.Equal("envsecret", config.Auth.SecretKey)
	suite.Equal("audience", config.Auth.Audience)
}

func (suite *ConfigTestSuite) TestGetConfig_Defaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("WHISKYREVIEW_DB_HOST", "test.local")
	suite.T().Setenv("WHISKYREVIEW_DB_PASSWORD", "test123")
	suite.T().Setenv("WHISKYREVIEW_AUTH_SECRETKEY", "secret")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(5432, config.DB.Port)
	suite.Equal("postgres", config.DB.User)
	suite.Equal("disable", config.DB.SSLMode)
	suite.Equal(8080, config.Server.Port)
	suite.Equal(12, config.Catalog.PageSize)
	suite.Equal(8, config.Catalog.LatestCount)
	suite.Equal(5, config.Catalog.HighlightCount)
	suite.Equal("host=test.local user=postgres password=test123 dbname=postgres port=5432 sslmode=disable TimeZone=UTC", config.DB.DSN())
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.Require().Error(err)
	suite.ErrorContains(err, "DB.Host: required validation failed")
	suite.ErrorContains(err, "DB.Password: required validation failed")
	suite.ErrorContains(err, "Auth.SecretKey: required validation failed")
}

func (suite *ConfigTestSuite) TestGetConfig_RejectsNonPositivePageSize() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/bad_page_size.toml", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, "page size")
}

func (suite *ConfigTestSuite) TestGetConfig_RequiresSecretKey() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("WHISKYREVIEW_DB_HOST", "test.local")
	suite.T().Setenv("WHISKYREVIEW_DB_PASSWORD", "test123")

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "Auth.SecretKey: required validation failed")
}
