package placement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/db"
)

// ApplicationStore is the subset of database operations the application
// lifecycle needs.
type ApplicationStore interface {
	GetApplicationByPair(ctx context.Context, studentID, driveID uuid.UUID) (*db.Application, error)
	FindOrCreateApplication(ctx context.Context, studentID, driveID uuid.UUID, status string) (*db.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*db.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) error
}

// ApplicationService manages the application lifecycle for placement drives.
type ApplicationService struct {
	store ApplicationStore
}

// NewApplicationService creates an ApplicationService backed by the given store.
func NewApplicationService(store ApplicationStore) *ApplicationService {
	return &ApplicationService{store: store}
}

// Apply records a student's application to a drive. Applying is idempotent:
// at most one application exists per (student, drive), and repeat calls return
// the existing record without resetting its status. The second return value
// reports whether a new application was created.
func (s *ApplicationService) Apply(ctx context.Context, studentID, driveID uuid.UUID) (*db.Application, bool, error) {
	existing, err := s.store.GetApplicationByPair(ctx, studentID, driveID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing application: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	// Concurrent first-time applies race on the unique (student, drive)
	// pair; the find-or-create resolves the race so both callers get the
	// same row back.
	app, err := s.store.FindOrCreateApplication(ctx, studentID, driveID, StatusApplied)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create application: %w", err)
	}
	return app, true, nil
}

// UpdateStatus sets an application's status to any recognized value. Manual
// transitions are unrestricted, so an administrator can move an application
// out of a terminal status to correct a mistake.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*db.Application, error) {
	if !ValidStatus(status) {
		return nil, &ErrInvalidStatus{Status: status}
	}

	app, err := s.store.GetApplication(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return nil, &ErrNotFound{Resource: "application", ID: id}
	}

	if err := s.store.UpdateApplicationStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	app.Status = status
	return app, nil
}
