package placement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_CreatesApplication(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store)
	studentID, driveID := uuid.New(), uuid.New()

	app, created, err := svc.Apply(context.Background(), studentID, driveID)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, studentID, app.StudentID)
	assert.Equal(t, driveID, app.DriveID)
	assert.Equal(t, StatusApplied, app.Status)
	assert.Equal(t, 1, store.count())
}

func TestApply_IsIdempotent(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store)
	studentID, driveID := uuid.New(), uuid.New()

	first, created, err := svc.Apply(context.Background(), studentID, driveID)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Apply(context.Background(), studentID, driveID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.count())
}

func TestApply_RepeatDoesNotResetStatus(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store)
	studentID, driveID := uuid.New(), uuid.New()

	app, _, err := svc.Apply(context.Background(), studentID, driveID)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), app.ID, StatusAptitudeCleared)
	require.NoError(t, err)

	// Applying again must hand back the advanced application untouched.
	again, created, err := svc.Apply(context.Background(), studentID, driveID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, app.ID, again.ID)
	assert.Equal(t, StatusAptitudeCleared, again.Status)
}

func TestApply_SameStudentDifferentDrives(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store)
	studentID := uuid.New()

	_, created, err := svc.Apply(context.Background(), studentID, uuid.New())
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = svc.Apply(context.Background(), studentID, uuid.New())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, store.count())
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store)

	app, _, err := svc.Apply(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), app.ID, StatusSelected)

	require.NoError(t, err)
	assert.Equal(t, StatusSelected, updated.Status)

	stored, err := store.GetApplication(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSelected, stored.Status)
}

func TestUpdateStatus_ManualCorrectionLeavesTerminal(t *testing.T) {
	// Administrators can move an application back out of a terminal
	// status; only automated transitions honor terminality.
	store := newFakeApplicationStore()
	svc := NewApplicationService(store)

	app, _, err := svc.Apply(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), app.ID, StatusRejected)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), app.ID, StatusAptitudeCleared)

	require.NoError(t, err)
	assert.Equal(t, StatusAptitudeCleared, updated.Status)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store)

	app, _, err := svc.Apply(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), app.ID, "hired")

	var invalid *ErrInvalidStatus
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "hired", invalid.Status)

	// The stored status must be untouched.
	stored, err := store.GetApplication(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, stored.Status)
}

func TestUpdateStatus_MissingApplication(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationStore())
	id := uuid.New()

	_, err := svc.UpdateStatus(context.Background(), id, StatusSelected)

	var notFound *ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "application", notFound.Resource)
	assert.Equal(t, id, notFound.ID)
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Applied"))
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, TerminalStatus(StatusSelected))
	assert.True(t, TerminalStatus(StatusRejected))
	assert.False(t, TerminalStatus(StatusApplied))
	assert.False(t, TerminalStatus(StatusAptitudeCleared))
	assert.False(t, TerminalStatus(StatusInterviewScheduled))
}
