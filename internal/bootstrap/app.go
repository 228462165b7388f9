package bootstrap

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"

	"exercise-tracker/internal/config"
	"exercise-tracker/internal/logger"
	mysqlClient "exercise-tracker/internal/platform/mysql"
	rabbitmqClient "exercise-tracker/internal/platform/rabbitmq"
)

type App struct {
	Config *config.Config
	Logger *logger.Logger
	MySQL  *gorm.DB
	MQConn *amqp.Connection
	Events *rabbitmqClient.ActivityPublisher

	StartedAt time.Time
}

// New connects to the store, migrates it and, when configured, connects the
// activity event broker.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	mysqlDB, err := mysqlClient.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := mysqlClient.Migrate(mysqlDB); err != nil {
		closeDB(mysqlDB)
		return nil, err
	}

	app := &App{
		Config:    cfg,
		Logger:    log,
		MySQL:     mysqlDB,
		StartedAt: time.Now(),
	}

	if cfg.EventsEnabled() {
		mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.ActivityQueue)
		if err != nil {
			closeDB(mysqlDB)
			return nil, err
		}
		app.MQConn = mqConn
		app.Events = rabbitmqClient.NewActivityPublisher(mqConn, cfg.RabbitMQ.ActivityQueue)
		log.Info("activity events enabled", "queue", cfg.RabbitMQ.ActivityQueue)
	}

	return app, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
