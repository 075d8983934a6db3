package goal

import (
	"github.com/saulo-duarte/lifeboard/internal/task"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, taskRepo task.TaskRepository) *Container {
	repo := NewRepository(db, taskRepo)
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
