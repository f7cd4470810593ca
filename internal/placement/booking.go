package placement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/db"
)

// SlotStore is the subset of database operations slot booking needs.
type SlotStore interface {
	GetMentorshipSlot(ctx context.Context, id uuid.UUID) (*db.MentorshipSlot, error)
	ClaimMentorshipSlot(ctx context.Context, slotID, studentID uuid.UUID) (bool, error)
}

// BookingService books mentorship slots atomically. Any number of students
// may race for the same slot; exactly one wins.
type BookingService struct {
	store SlotStore
}

// NewBookingService creates a BookingService backed by the given store.
func NewBookingService(store SlotStore) *BookingService {
	return &BookingService{store: store}
}

// Claim books the slot for the student. The claim is a single conditional
// update, so under any interleaving of concurrent claims exactly one caller
// succeeds. Losers get ErrSlotTaken if the slot exists and is booked, or
// ErrNotFound if it never existed.
func (s *BookingService) Claim(ctx context.Context, slotID, studentID uuid.UUID) (*db.MentorshipSlot, error) {
	claimed, err := s.store.ClaimMentorshipSlot(ctx, slotID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim mentorship slot: %w", err)
	}

	slot, err := s.store.GetMentorshipSlot(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mentorship slot: %w", err)
	}

	if claimed {
		if slot == nil {
			// Slot was deleted between the claim and the read back.
			// The claim itself still won.
			slot = &db.MentorshipSlot{ID: slotID, BookedBy: &studentID}
		}
		return slot, nil
	}

	if slot == nil {
		return nil, &ErrNotFound{Resource: "mentorship slot", ID: slotID}
	}
	return nil, &ErrSlotTaken{SlotID: slotID}
}
