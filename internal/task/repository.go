package task

import (
	"context"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"gorm.io/gorm"
)

type TaskRepository interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Task, error)
	TimeLogsSince(ctx context.Context, userID uuid.UUID, since util.Date) ([]*TimeLog, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tasks []*Task
	if err := r.db.WithContext(ctx).
		Select("id", "user_id", "status", "completed_at", "updated_at").
		Where("id IN ?", ids).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Task, error) {
	var tasks []*Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) TimeLogsSince(ctx context.Context, userID uuid.UUID, since util.Date) ([]*TimeLog, error) {
	var logs []*TimeLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date >= ?", userID, since).
		Order("log_date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
