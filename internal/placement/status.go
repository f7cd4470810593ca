// Package placement implements the matching and scheduling rules of the
// campus placement suite: eligibility resolution, the application lifecycle,
// interview scheduling, mentorship slot booking, skill gap analysis, and the
// FAQ chatbot.
package placement

// Application statuses. Progression is applied → aptitude_cleared →
// interview_scheduled → selected or rejected, but administrators may set any
// status directly; only automated transitions respect terminality.
const (
	StatusApplied            = "applied"
	StatusAptitudeCleared    = "aptitude_cleared"
	StatusInterviewScheduled = "interview_scheduled"
	StatusSelected           = "selected"
	StatusRejected           = "rejected"
)

// Drive lifecycle statuses.
const (
	DriveUpcoming  = "upcoming"
	DriveOngoing   = "ongoing"
	DriveCompleted = "completed"
)

// Statuses returns the valid application statuses in progression order.
func Statuses() []string {
	return []string{StatusApplied, StatusAptitudeCleared, StatusInterviewScheduled, StatusSelected, StatusRejected}
}

// ValidStatus reports whether s is a recognized application status.
func ValidStatus(s string) bool {
	switch s {
	case StatusApplied, StatusAptitudeCleared, StatusInterviewScheduled, StatusSelected, StatusRejected:
		return true
	}
	return false
}

// TerminalStatus reports whether s is a final outcome. Automated transitions
// never overwrite a terminal status.
func TerminalStatus(s string) bool {
	return s == StatusSelected || s == StatusRejected
}
