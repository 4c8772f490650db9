package cmd

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/WhiskyReview/configs"
	"droscher.com/WhiskyReview/pkg/repository"
)

type AddAdminCmd struct {
	ConfigFile  string `default:".WhiskyReview.toml" help:"Path to config file" short:"c"`
	Email       string `arg:""                       help:"E-mail claim the admin's tokens carry"`
	Username    string `help:"Login name, defaults to the e-mail address"`
	DisplayName string `help:"Name shown in the admin panel"`
}

func (a *AddAdminCmd) Run(_ *Context) error {
	logger := developmentLogger()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(a.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}
	defer repo.Close()

	username := a.Username
	if username == "" {
		username = a.Email
	}

	user, err := repo.AddUser(context.Background(), username, a.DisplayName, a.Email)
	if err != nil {
		logger.Error("error adding admin", zap.Error(err))

		return err
	}

	logger.Info("admin added", zap.String("email", user.Email), zap.Stringer("uuid", user.UUID))

	return nil
}
