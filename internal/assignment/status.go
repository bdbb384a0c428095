package assignment

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/piyuclean-api/internal/models"
)

var (
	ErrInvalidStatus       = errors.New("invalid assignment status")
	ErrCompletedIsTerminal = errors.New("a completed assignment cannot change status")
	ErrInvalidTransition   = errors.New("status transition is not allowed")
)

// ParseStatus validates a status string coming from a request.
func ParseStatus(s string) (models.AssignmentStatus, error) {
	status := models.AssignmentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// IsOpen reports whether the status is in the "not yet done" bucket.
func IsOpen(s models.AssignmentStatus) bool {
	return s == models.AssignmentStatusAssigned || s == models.AssignmentStatusPending
}

// CanTransition checks a status change against the lifecycle:
//
//	assigned -> pending
//	assigned | pending -> overdue
//	assigned | pending | overdue -> completed
//
// Staying in the same state is always allowed. Nothing leaves completed.
func CanTransition(from, to models.AssignmentStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	if from == to {
		return nil
	}
	if from == models.AssignmentStatusCompleted {
		return ErrCompletedIsTerminal
	}

	switch to {
	case models.AssignmentStatusPending:
		if from == models.AssignmentStatusAssigned {
			return nil
		}
	case models.AssignmentStatusOverdue:
		if IsOpen(from) {
			return nil
		}
	case models.AssignmentStatusCompleted:
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// MarkComplete completes the assignment at now. Completing an already
// completed assignment is a no-op that keeps the first completion time;
// the return value reports whether anything changed.
func MarkComplete(a *models.Assignment, now time.Time) bool {
	if a.Status == models.AssignmentStatusCompleted && a.CompletedAt != nil {
		return false
	}
	completedAt := now
	a.Status = models.AssignmentStatusCompleted
	a.CompletedAt = &completedAt
	return true
}

// StatusUpdate is a requested change of an assignment's status fields.
type StatusUpdate struct {
	Status      models.AssignmentStatus
	CompletedAt *time.Time
	Comments    *string
}

// ApplyStatus validates update against the lifecycle and applies it to a.
// CompletedAt is only kept for completed assignments; completing without
// an explicit time stamps now, and re-completing keeps the first time
// unless a new one is given.
func ApplyStatus(a *models.Assignment, update StatusUpdate, now time.Time) error {
	if err := CanTransition(a.Status, update.Status); err != nil {
		return err
	}

	if update.Status == models.AssignmentStatusCompleted {
		switch {
		case update.CompletedAt != nil:
			completedAt := *update.CompletedAt
			a.CompletedAt = &completedAt
		case a.CompletedAt == nil:
			completedAt := now
			a.CompletedAt = &completedAt
		}
	} else {
		a.CompletedAt = nil
	}

	a.Status = update.Status
	if update.Comments != nil {
		comments := *update.Comments
		a.Comments = &comments
	}
	return nil
}

// IsOverdue reports whether an open assignment's day has passed.
func IsOverdue(a models.Assignment, today models.Date) bool {
	return IsOpen(a.Status) && a.Date.Before(today)
}
