package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateMentorshipSlot inserts an open slot for an alumni mentor
func (db *DB) CreateMentorshipSlot(ctx context.Context, slot *MentorshipSlot) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO mentorship_slots (alumni_id, available_time, meeting_link)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		slot.AlumniID, slot.AvailableTime, slot.MeetingLink,
	).Scan(&slot.ID)
	if err != nil {
		return fmt.Errorf("failed to create mentorship slot: %w", err)
	}
	return nil
}

// GetMentorshipSlot retrieves a slot by ID
func (db *DB) GetMentorshipSlot(ctx context.Context, id uuid.UUID) (*MentorshipSlot, error) {
	var s MentorshipSlot
	err := db.pool.QueryRow(ctx,
		`SELECT id, alumni_id, available_time, meeting_link, booked_by
		 FROM mentorship_slots WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.AlumniID, &s.AvailableTime, &s.MeetingLink, &s.BookedBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mentorship slot: %w", err)
	}
	return &s, nil
}

// ClaimMentorshipSlot books a slot for a student if and only if nobody holds
// it yet. The conditional update is the entire arbitration: exactly one
// concurrent caller sees a row change.
func (db *DB) ClaimMentorshipSlot(ctx context.Context, slotID, studentID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE mentorship_slots SET booked_by = $1
		 WHERE id = $2 AND booked_by IS NULL`,
		studentID, slotID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim mentorship slot: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// DeleteMentorshipSlot removes a slot, but only when the given alumni owns it
func (db *DB) DeleteMentorshipSlot(ctx context.Context, id, alumniID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM mentorship_slots WHERE id = $1 AND alumni_id = $2`,
		id, alumniID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete mentorship slot: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// MentorshipSlotDetail is a slot joined with mentor and booker context.
type MentorshipSlotDetail struct {
	MentorshipSlot
	AlumniName   string  `json:"alumni_name"`
	Company      string  `json:"company"`
	Designation  string  `json:"designation"`
	BookedByName *string `json:"booked_by_name,omitempty"`
}

// ListMentorshipSlotsByAlumni retrieves a mentor's own slots with booker
// names resolved, earliest first
func (db *DB) ListMentorshipSlotsByAlumni(ctx context.Context, alumniID uuid.UUID) ([]MentorshipSlotDetail, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT ms.id, ms.alumni_id, ms.available_time, ms.meeting_link, ms.booked_by,
		        COALESCE(au.name, '?'), COALESCE(al.company, ''), COALESCE(al.designation, ''),
		        bu.name
		 FROM mentorship_slots ms
		 LEFT JOIN alumni al ON al.id = ms.alumni_id
		 LEFT JOIN users au ON au.id = al.user_id
		 LEFT JOIN students bs ON bs.id = ms.booked_by
		 LEFT JOIN users bu ON bu.id = bs.user_id
		 WHERE ms.alumni_id = $1
		 ORDER BY ms.available_time ASC`,
		alumniID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentorship slots: %w", err)
	}
	defer rows.Close()

	return scanSlotDetails(rows)
}

// ListOpenMentorshipSlots retrieves all unbooked slots with mentor context,
// earliest first
func (db *DB) ListOpenMentorshipSlots(ctx context.Context) ([]MentorshipSlotDetail, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT ms.id, ms.alumni_id, ms.available_time, ms.meeting_link, ms.booked_by,
		        COALESCE(au.name, '?'), COALESCE(al.company, ''), COALESCE(al.designation, ''),
		        NULL
		 FROM mentorship_slots ms
		 LEFT JOIN alumni al ON al.id = ms.alumni_id
		 LEFT JOIN users au ON au.id = al.user_id
		 WHERE ms.booked_by IS NULL
		 ORDER BY ms.available_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list open mentorship slots: %w", err)
	}
	defer rows.Close()

	return scanSlotDetails(rows)
}

func scanSlotDetails(rows pgx.Rows) ([]MentorshipSlotDetail, error) {
	var slots []MentorshipSlotDetail
	for rows.Next() {
		var sd MentorshipSlotDetail
		if err := rows.Scan(&sd.ID, &sd.AlumniID, &sd.AvailableTime, &sd.MeetingLink, &sd.BookedBy,
			&sd.AlumniName, &sd.Company, &sd.Designation, &sd.BookedByName); err != nil {
			return nil, fmt.Errorf("failed to scan mentorship slot: %w", err)
		}
		slots = append(slots, sd)
	}
	return slots, nil
}

// CountMentorshipSlots counts a mentor's slots, optionally only booked ones
func (db *DB) CountMentorshipSlots(ctx context.Context, alumniID uuid.UUID, bookedOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM mentorship_slots WHERE alumni_id = $1`
	if bookedOnly {
		query += ` AND booked_by IS NOT NULL`
	}

	var count int
	if err := db.pool.QueryRow(ctx, query, alumniID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count mentorship slots: %w", err)
	}
	return count, nil
}
