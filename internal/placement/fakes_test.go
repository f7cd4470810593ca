package placement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suhan648/placementpro/internal/db"
)

// In-memory store fakes. All of them are safe for concurrent use so the
// booking race test can hammer one from many goroutines.

type fakeApplicationStore struct {
	mu   sync.Mutex
	apps map[uuid.UUID]*db.Application
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[uuid.UUID]*db.Application)}
}

func (f *fakeApplicationStore) add(app db.Application) db.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	stored := app
	f.apps[stored.ID] = &stored
	return app
}

func (f *fakeApplicationStore) GetApplicationByPair(_ context.Context, studentID, driveID uuid.UUID) (*db.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findPairLocked(studentID, driveID), nil
}

func (f *fakeApplicationStore) FindOrCreateApplication(_ context.Context, studentID, driveID uuid.UUID, status string) (*db.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing := f.findPairLocked(studentID, driveID); existing != nil {
		return existing, nil
	}
	app := &db.Application{
		ID:        uuid.New(),
		StudentID: studentID,
		DriveID:   driveID,
		Status:    status,
		AppliedAt: time.Now(),
	}
	f.apps[app.ID] = app
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationStore) GetApplication(_ context.Context, id uuid.UUID) (*db.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *app
	return &cp, nil
}

func (f *fakeApplicationStore) UpdateApplicationStatus(_ context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return fmt.Errorf("application not found: %s", id)
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationStore) findPairLocked(studentID, driveID uuid.UUID) *db.Application {
	for _, app := range f.apps {
		if app.StudentID == studentID && app.DriveID == driveID {
			cp := *app
			return &cp
		}
	}
	return nil
}

func (f *fakeApplicationStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.apps)
}

type fakeInterviewStore struct {
	mu         sync.Mutex
	interviews map[uuid.UUID]*db.Interview
}

func newFakeInterviewStore() *fakeInterviewStore {
	return &fakeInterviewStore{interviews: make(map[uuid.UUID]*db.Interview)}
}

func (f *fakeInterviewStore) FindInterviewConflict(_ context.Context, studentID, driveID uuid.UUID, at time.Time) (*db.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, iv := range f.interviews {
		if iv.StudentID == studentID && iv.TimeSlot.Equal(at) && iv.DriveID != driveID {
			cp := *iv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInterviewStore) UpsertInterview(_ context.Context, iv *db.Interview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.interviews {
		if existing.StudentID == iv.StudentID && existing.DriveID == iv.DriveID {
			existing.TimeSlot = iv.TimeSlot
			existing.Venue = iv.Venue
			existing.Notes = iv.Notes
			iv.ID = existing.ID
			return nil
		}
	}
	if iv.ID == uuid.Nil {
		iv.ID = uuid.New()
	}
	cp := *iv
	f.interviews[cp.ID] = &cp
	return nil
}

func (f *fakeInterviewStore) GetInterview(_ context.Context, id uuid.UUID) (*db.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	iv, ok := f.interviews[id]
	if !ok {
		return nil, nil
	}
	cp := *iv
	return &cp, nil
}

func (f *fakeInterviewStore) DeleteInterview(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.interviews[id]; !ok {
		return fmt.Errorf("interview not found: %s", id)
	}
	delete(f.interviews, id)
	return nil
}

func (f *fakeInterviewStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.interviews)
}

type fakeSlotStore struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*db.MentorshipSlot
}

func newFakeSlotStore() *fakeSlotStore {
	return &fakeSlotStore{slots: make(map[uuid.UUID]*db.MentorshipSlot)}
}

func (f *fakeSlotStore) add(slot db.MentorshipSlot) db.MentorshipSlot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	stored := slot
	f.slots[stored.ID] = &stored
	return slot
}

func (f *fakeSlotStore) GetMentorshipSlot(_ context.Context, id uuid.UUID) (*db.MentorshipSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[id]
	if !ok {
		return nil, nil
	}
	cp := *slot
	return &cp, nil
}

func (f *fakeSlotStore) ClaimMentorshipSlot(_ context.Context, slotID, studentID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slot, ok := f.slots[slotID]
	if !ok || slot.BookedBy != nil {
		return false, nil
	}
	booker := studentID
	slot.BookedBy = &booker
	return true, nil
}

type sentMessage struct {
	To      string
	Subject string
	Body    string
}

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]bool
}

func newFakeNotifier(failFor ...string) *fakeNotifier {
	fails := make(map[string]bool, len(failFor))
	for _, addr := range failFor {
		fails[addr] = true
	}
	return &fakeNotifier{failFor: fails}
}

func (f *fakeNotifier) Notify(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[to] {
		return fmt.Errorf("smtp refused %s", to)
	}
	f.sent = append(f.sent, sentMessage{To: to, Subject: subject, Body: body})
	return nil
}

func (f *fakeNotifier) delivered() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentMessage, len(f.sent))
	copy(out, f.sent)
	return out
}
