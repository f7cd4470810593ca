package placement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suhan648/placementpro/internal/db"
)

// InterviewStore is the subset of database operations the scheduler needs.
type InterviewStore interface {
	FindInterviewConflict(ctx context.Context, studentID, driveID uuid.UUID, at time.Time) (*db.Interview, error)
	UpsertInterview(ctx context.Context, iv *db.Interview) error
	GetInterview(ctx context.Context, id uuid.UUID) (*db.Interview, error)
	DeleteInterview(ctx context.Context, id uuid.UUID) error
}

// InterviewService schedules interviews and keeps application statuses in
// step with them.
type InterviewService struct {
	store  InterviewStore
	apps   ApplicationStore
	logger *zap.Logger
}

// NewInterviewService creates an InterviewService backed by the given stores.
func NewInterviewService(store InterviewStore, apps ApplicationStore, logger *zap.Logger) *InterviewService {
	return &InterviewService{store: store, apps: apps, logger: logger}
}

// Schedule books an interview for a (student, drive) pair at the given time.
// It fails with ErrScheduleConflict when the student already has an interview
// for a different drive at exactly that time; rescheduling the same pair
// overwrites the existing interview in place and is never a conflict.
//
// After booking, the pair's application is advanced to interview_scheduled
// unless it is missing or already in a terminal status. In either of those
// cases the interview still stands and only the status update is skipped.
func (s *InterviewService) Schedule(ctx context.Context, studentID, driveID uuid.UUID, at time.Time, venue, notes string) (*db.Interview, error) {
	conflict, err := s.store.FindInterviewConflict(ctx, studentID, driveID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to check interview conflicts: %w", err)
	}
	if conflict != nil {
		return nil, &ErrScheduleConflict{StudentID: studentID, At: at}
	}

	iv := &db.Interview{
		StudentID: studentID,
		DriveID:   driveID,
		TimeSlot:  at,
		Venue:     venue,
		Notes:     notes,
	}
	if err := s.store.UpsertInterview(ctx, iv); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}

	app, err := s.apps.GetApplicationByPair(ctx, studentID, driveID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up application for interview: %w", err)
	}
	switch {
	case app == nil:
		s.logger.Info("interview scheduled without application",
			zap.String("student_id", studentID.String()),
			zap.String("drive_id", driveID.String()))
	case TerminalStatus(app.Status):
		s.logger.Info("interview scheduled, application already decided",
			zap.String("application_id", app.ID.String()),
			zap.String("status", app.Status))
	default:
		if err := s.apps.UpdateApplicationStatus(ctx, app.ID, StatusInterviewScheduled); err != nil {
			return nil, fmt.Errorf("failed to advance application status: %w", err)
		}
	}
	return iv, nil
}

// Remove cancels an interview. The pair's application status is left exactly
// as it is; reverting it is an administrative decision, not an automatic one.
func (s *InterviewService) Remove(ctx context.Context, id uuid.UUID) error {
	iv, err := s.store.GetInterview(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get interview: %w", err)
	}
	if iv == nil {
		return &ErrNotFound{Resource: "interview", ID: id}
	}
	if err := s.store.DeleteInterview(ctx, id); err != nil {
		return fmt.Errorf("failed to delete interview: %w", err)
	}
	return nil
}
