package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/lifeboard/internal/auth"
	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/goal"
	"github.com/saulo-duarte/lifeboard/internal/review"
	"github.com/saulo-duarte/lifeboard/internal/task"
	"gorm.io/gorm"
)

type Container struct {
	Settings        *config.Settings
	TaskRepo        task.TaskRepository
	GoalContainer   *goal.Container
	ReviewContainer *review.Container
}

// New loads settings, connects to the database and wires every feature.
func New(ctx context.Context, configPath string) (*Container, error) {
	config.Init()

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return nil, err
	}
	config.SetLogLevel(settings.Log.Level)

	if err := config.Connect(ctx, settings.Database.Driver, settings.Database.DSN); err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	return Build(config.DB, settings)
}

// Build wires the features on top of an open database.
func Build(db *gorm.DB, settings *config.Settings) (*Container, error) {
	if settings.Auth.JWTSecret != "" {
		auth.InitWithSecret(settings.Auth.JWTSecret)
	}

	taskRepo := task.NewRepository(db)
	goalContainer := goal.NewContainer(db, taskRepo)
	reviewContainer, err := review.NewContainer(taskRepo, settings.Review.AreaMapping)
	if err != nil {
		return nil, fmt.Errorf("review area mapping: %w", err)
	}

	return &Container{
		Settings:        settings,
		TaskRepo:        taskRepo,
		GoalContainer:   goalContainer,
		ReviewContainer: reviewContainer,
	}, nil
}
