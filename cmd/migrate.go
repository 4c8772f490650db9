package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/WhiskyReview/configs"
	"droscher.com/WhiskyReview/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".WhiskyReview.toml" help:"Path to config file" short:"c"`
	SkipSeed   bool   `help:"Only migrate the schema, do not seed reference data"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logger := developmentLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.Migrate(); err != nil {
		return err
	}

	if m.SkipSeed {
		return nil
	}

	return repo.SeedReferenceData(context.Background(), repository.DefaultReferenceData)
}

func developmentLogger() *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()

	return logger
}
