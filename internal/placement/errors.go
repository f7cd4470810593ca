package placement

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound indicates the referenced record does not exist.
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrScheduleConflict indicates the candidate already has an interview for a
// different drive at the requested time.
type ErrScheduleConflict struct {
	StudentID uuid.UUID
	At        time.Time
}

func (e *ErrScheduleConflict) Error() string {
	return fmt.Sprintf("student %s already has an interview at %s", e.StudentID, e.At.Format(time.RFC3339))
}

// ErrSlotTaken indicates another student claimed the mentorship slot first.
type ErrSlotTaken struct {
	SlotID uuid.UUID
}

func (e *ErrSlotTaken) Error() string {
	return fmt.Sprintf("mentorship slot %s is already booked", e.SlotID)
}

// ErrInvalidStatus indicates a status outside the recognized set.
type ErrInvalidStatus struct {
	Status string
}

func (e *ErrInvalidStatus) Error() string {
	return fmt.Sprintf("invalid status %q, want one of: %s", e.Status, strings.Join(Statuses(), ", "))
}
