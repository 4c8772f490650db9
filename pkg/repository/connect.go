package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/WhiskyReview/configs"
	"droscher.com/WhiskyReview/pkg/model"
)

// Repository is the single store handle shared by every server. It is built
// once at start-up and passed down explicitly.
type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime   = 5 * time.Minute
	maxLifetime   = time.Hour
	slowThreshold = 500 * time.Millisecond
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	return OpenDSN(conf.DB.DSN(), conf.DB, logger)
}

func OpenDSN(dsn string, dbConf configs.DB, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SlowThreshold = slowThreshold
	gormLogger.SetAsDefault()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(dbConf.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(dbConf.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, nil
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Ping checks that the database answers.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Migrate brings the schema up to date with the model.
func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(
		&model.Origin{}, &model.Region{}, &model.WhiskyType{}, &model.FlavorTag{},
		&model.Whisky{}, &model.WhiskyFlavorTag{},
		&model.User{})
}
