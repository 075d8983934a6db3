package review

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/task"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// TaskSource is the slice of the task store the dashboard reads.
type TaskSource interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*task.Task, error)
	TimeLogsSince(ctx context.Context, userID uuid.UUID, since util.Date) ([]*task.TimeLog, error)
}

type Service interface {
	Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) []AreaSummary
	Summary(ctx context.Context, userID uuid.UUID, now time.Time) ReviewSummary
}

type service struct {
	source     TaskSource
	aggregator *Aggregator
}

func NewService(source TaskSource, aggregator *Aggregator) Service {
	return &service{source: source, aggregator: aggregator}
}

// Dashboard never fails: a store error is logged and every bucket reads "Never".
func (s *service) Dashboard(ctx context.Context, userID uuid.UUID, now time.Time) []AreaSummary {
	return s.aggregator.Aggregate(s.rows(ctx, userID, now), now)
}

func (s *service) Summary(ctx context.Context, userID uuid.UUID, now time.Time) ReviewSummary {
	return Summarize(s.Dashboard(ctx, userID, now))
}

func (s *service) rows(ctx context.Context, userID uuid.UUID, now time.Time) []RawAreaRow {
	log := config.WithContext(ctx).WithField("user_id", userID)

	tasks, err := s.source.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load tasks for review dashboard")
		return nil
	}

	since := util.DateOf(util.StartOfWeek(now))
	logs, err := s.source.TimeLogsSince(ctx, userID, since)
	if err != nil {
		log.WithError(err).Error("Failed to load time logs for review dashboard")
		return nil
	}

	rows := BuildRawRows(tasks, logs, now)
	log.WithFields(logrus.Fields{
		"tasks": len(tasks),
		"logs":  len(logs),
		"areas": len(rows),
	}).Debug("Review rows built")
	return rows
}
