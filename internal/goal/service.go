package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/config"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrInvalidCheckInDate  = errors.New("check-in date must be a Sunday")
	ErrDuplicateCheckIn    = errors.New("goal already has a check-in for this week")
	ErrInvalidCheckInCount = errors.New("targets hit must be between 0 and targets total")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
)

// CheckInHistoryLimit is how many weeks CheckInHistory looks back.
const CheckInHistoryLimit = 12

type Service interface {
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]GoalResponse, error)
	Progress(ctx context.Context, userID, goalID uuid.UUID) (*Progress, error)
	AreaProgress(ctx context.Context, userID uuid.UUID, area GoalArea) (*AreaProgress, error)
	MonthlySummary(ctx context.Context, userID, goalID uuid.UUID, year int, month time.Month) (*MonthlySummary, error)
	CheckInHistory(ctx context.Context, userID, goalID uuid.UUID) ([]*CheckIn, error)
	RecordCheckIn(ctx context.Context, userID, goalID uuid.UUID, dto CreateCheckInDTO) (*CheckIn, error)
	PendingCheckIns(ctx context.Context, userID uuid.UUID, now time.Time) (*PendingCheckInsResponse, error)
}

type service struct {
	repo     Repository
	resolver *Resolver
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		resolver: NewResolver(repo),
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]GoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}

	responses := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, s.toResponse(ctx, g))
	}
	return responses, nil
}

func (s *service) Progress(ctx context.Context, userID, goalID uuid.UUID) (*Progress, error) {
	g, err := s.findGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	p := s.resolver.Compute(ctx, g)
	return &p, nil
}

func (s *service) AreaProgress(ctx context.Context, userID uuid.UUID, area GoalArea) (*AreaProgress, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.ListByUser(ctx, userID, ListFilter{Status: GoalStatusActive, Area: area})
	if err != nil {
		log.WithError(err).WithField("area", area).Error("Failed to list active goals")
		return nil, err
	}

	out := s.resolver.ComputeArea(ctx, goals)
	out.Area = area
	return &out, nil
}

func (s *service) MonthlySummary(ctx context.Context, userID, goalID uuid.UUID, year int, month time.Month) (*MonthlySummary, error) {
	log := config.WithContext(ctx)

	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}
	if _, err := s.findGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	from, to := util.MonthRange(year, month)
	checkIns, err := s.repo.CheckInsBetween(ctx, goalID, from, to)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"goal_id": goalID,
			"from":    from.String(),
			"to":      to.String(),
		}).Error("Failed to load check-ins")
		return nil, err
	}

	summary := SummarizeMonth(checkIns)
	return &summary, nil
}

func (s *service) CheckInHistory(ctx context.Context, userID, goalID uuid.UUID) ([]*CheckIn, error) {
	if _, err := s.findGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	checkIns, err := s.repo.RecentCheckIns(ctx, goalID, CheckInHistoryLimit)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("goal_id", goalID).Error("Failed to load check-in history")
		return nil, err
	}
	if checkIns == nil {
		checkIns = []*CheckIn{}
	}
	return checkIns, nil
}

func (s *service) RecordCheckIn(ctx context.Context, userID, goalID uuid.UUID, dto CreateCheckInDTO) (*CheckIn, error) {
	log := config.WithContext(ctx)

	if dto.CheckinDate.IsZero() || dto.CheckinDate.Weekday() != time.Sunday {
		return nil, ErrInvalidCheckInDate
	}
	if dto.TargetsHit != nil && dto.TargetsTotal != nil {
		if *dto.TargetsHit < 0 || *dto.TargetsHit > *dto.TargetsTotal {
			return nil, ErrInvalidCheckInCount
		}
	}

	if _, err := s.findGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	existing, err := s.repo.CheckInOn(ctx, goalID, dto.CheckinDate)
	if err != nil {
		log.WithError(err).Error("Failed to look up existing check-in")
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCheckIn
	}

	checkIn := &CheckIn{
		GoalID:                 goalID,
		CheckinDate:            dto.CheckinDate,
		TargetsHit:             dto.TargetsHit,
		TargetsTotal:           dto.TargetsTotal,
		OverallPercentage:      dto.OverallPercentage,
		QualitativeFeedback:    dto.QualitativeFeedback,
		FeelingQuestion:        dto.FeelingQuestion,
		SustainabilityQuestion: dto.SustainabilityQuestion,
		ObstaclesNotes:         dto.ObstaclesNotes,
	}
	if len(dto.MetricSnapshot) > 0 {
		checkIn.MetricSnapshot = datatypes.JSON(dto.MetricSnapshot)
	}
	if checkIn.OverallPercentage == nil && dto.TargetsHit != nil && dto.TargetsTotal != nil {
		pct := float64(percentOf(*dto.TargetsHit, *dto.TargetsTotal))
		checkIn.OverallPercentage = &pct
	}

	if err := s.repo.CreateCheckIn(ctx, checkIn); err != nil {
		log.WithError(err).Error("Failed to create check-in")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"goal_id":      goalID,
		"checkin_date": checkIn.CheckinDate.String(),
	}).Info("Check-in recorded")
	return checkIn, nil
}

func (s *service) PendingCheckIns(ctx context.Context, userID uuid.UUID, now time.Time) (*PendingCheckInsResponse, error) {
	log := config.WithContext(ctx)

	if now.Weekday() != time.Sunday {
		return &PendingCheckInsResponse{IsCheckInDay: false, Goals: []GoalResponse{}}, nil
	}

	sunday := util.SundayOf(now)
	goals, err := s.repo.ListByUser(ctx, userID, ListFilter{Status: GoalStatusActive})
	if err != nil {
		log.WithError(err).Error("Failed to list active goals for check-in")
		return nil, err
	}

	pending := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		existing, err := s.repo.CheckInOn(ctx, g.ID, sunday)
		if err != nil {
			log.WithError(err).WithField("goal_id", g.ID).Warn("Failed to check existing check-in")
			continue
		}
		if existing == nil {
			pending = append(pending, s.toResponse(ctx, g))
		}
	}

	return &PendingCheckInsResponse{
		IsCheckInDay: true,
		SundayDate:   &sunday,
		Goals:        pending,
	}, nil
}

func (s *service) findGoal(ctx context.Context, userID, goalID uuid.UUID) (*Goal, error) {
	g, err := s.repo.FindByIDAndUser(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			config.WithContext(ctx).WithFields(logrus.Fields{
				"goal_id": goalID,
				"user_id": userID,
			}).Warn("Goal not found or does not belong to user")
			return nil, ErrGoalNotFound
		}
		config.WithContext(ctx).WithError(err).Error("Error finding goal by ID")
		return nil, err
	}
	return g, nil
}

func (s *service) toResponse(ctx context.Context, g *Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Area:          g.Area,
		GoalStatement: g.GoalStatement,
		TargetDate:    g.TargetDate,
		PrimaryMetric: g.PrimaryMetric,
		MetricUnit:    g.MetricUnit,
		Status:        g.Status,
		Progress:      s.resolver.Compute(ctx, g),
		UpdatedAt:     g.UpdatedAt,
	}
}
