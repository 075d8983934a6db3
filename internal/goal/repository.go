package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/task"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"gorm.io/gorm"
)

type Repository interface {
	ProgressStore
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Goal, error)
	CheckInsBetween(ctx context.Context, goalID uuid.UUID, from, to util.Date) ([]*CheckIn, error)
	CheckInOn(ctx context.Context, goalID uuid.UUID, day util.Date) (*CheckIn, error)
	RecentCheckIns(ctx context.Context, goalID uuid.UUID, limit int) ([]*CheckIn, error)
	CreateCheckIn(ctx context.Context, c *CheckIn) error
}

type ListFilter struct {
	Status GoalStatus
	Area   GoalArea
}

type repository struct {
	db    *gorm.DB
	tasks task.TaskRepository
}

func NewRepository(db *gorm.DB, tasks task.TaskRepository) Repository {
	return &repository{db: db, tasks: tasks}
}

func (r *repository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Goal, error) {
	var g Goal
	if err := r.db.WithContext(ctx).First(&g, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Goal, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Area != "" {
		q = q.Where("area = ?", filter.Area)
	}

	var goals []*Goal
	if err := q.Order("target_date ASC").Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) TargetsByGoal(ctx context.Context, goalID uuid.UUID) ([]*Target, error) {
	var targets []*Target
	if err := r.db.WithContext(ctx).Where("goal_id = ?", goalID).Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}

func (r *repository) LinksByGoal(ctx context.Context, goalID uuid.UUID) ([]*TaskLink, error) {
	var links []*TaskLink
	if err := r.db.WithContext(ctx).
		Select("id", "goal_id", "task_id", "target_id", "contribution_type").
		Where("goal_id = ?", goalID).
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *repository) TasksByIDs(ctx context.Context, ids []uuid.UUID) ([]*task.Task, error) {
	return r.tasks.FindByIDs(ctx, ids)
}

func (r *repository) CheckInsBetween(ctx context.Context, goalID uuid.UUID, from, to util.Date) ([]*CheckIn, error) {
	var checkIns []*CheckIn
	if err := r.db.WithContext(ctx).
		Where("goal_id = ? AND checkin_date >= ? AND checkin_date <= ?", goalID, from, to).
		Order("checkin_date ASC").
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *repository) CheckInOn(ctx context.Context, goalID uuid.UUID, day util.Date) (*CheckIn, error) {
	var checkIns []*CheckIn
	if err := r.db.WithContext(ctx).
		Where("goal_id = ? AND checkin_date = ?", goalID, day).
		Limit(1).
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	if len(checkIns) == 0 {
		return nil, nil
	}
	return checkIns[0], nil
}

// RecentCheckIns returns up to limit check-ins, newest first.
func (r *repository) RecentCheckIns(ctx context.Context, goalID uuid.UUID, limit int) ([]*CheckIn, error) {
	var checkIns []*CheckIn
	if err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("checkin_date DESC").
		Limit(limit).
		Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *repository) CreateCheckIn(ctx context.Context, c *CheckIn) error {
	return r.db.WithContext(ctx).Create(c).Error
}
