package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/task"
)

// ProgressStore is the read side the task-link computation needs.
type ProgressStore interface {
	TargetsByGoal(ctx context.Context, goalID uuid.UUID) ([]*Target, error)
	LinksByGoal(ctx context.Context, goalID uuid.UUID) ([]*TaskLink, error)
	TasksByIDs(ctx context.Context, ids []uuid.UUID) ([]*task.Task, error)
}

// TaskLinkProgress measures a goal by the share of its linked tasks that are
// Done. The percentage is always taken over the tasks actually fetched.
// TargetsTotal reports that task count, or the number of targets when no
// linked task could be found.
func TaskLinkProgress(ctx context.Context, store ProgressStore, goalID uuid.UUID) (Progress, error) {
	result := Progress{GoalID: goalID, Basis: BasisTaskLink}

	targets, err := store.TargetsByGoal(ctx, goalID)
	if err != nil {
		return result, fmt.Errorf("fetch targets: %w", err)
	}
	if len(targets) == 0 {
		return result, nil
	}
	result.TargetsTotal = len(targets)

	links, err := store.LinksByGoal(ctx, goalID)
	if err != nil {
		return result, fmt.Errorf("fetch task links: %w", err)
	}
	if len(links) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.TaskID)
	}

	tasks, err := store.TasksByIDs(ctx, ids)
	if err != nil {
		return result, fmt.Errorf("fetch linked tasks: %w", err)
	}
	if len(tasks) == 0 {
		return result, nil
	}

	completed := 0
	for _, t := range tasks {
		if t.IsDone() {
			completed++
		}
	}

	result.TargetsHit = completed
	result.TargetsTotal = len(tasks)
	result.CompletionPercentage = percentOf(completed, len(tasks))
	return result, nil
}
