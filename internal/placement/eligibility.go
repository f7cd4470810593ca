package placement

import "github.com/suhan648/placementpro/internal/db"

// IsEligible reports whether a student clears a drive's cutoff. All three
// criteria must hold: the student's branch is among the drive's allowed
// branches, their CGPA meets the minimum, and their backlog count does not
// exceed the cap. Unset numeric fields count as zero, so a student with no
// recorded CGPA fails any positive cutoff.
func IsEligible(student db.Student, drive db.Drive) bool {
	if !branchAllowed(student.Branch, drive.AllowedBranches) {
		return false
	}
	if student.CGPA < drive.MinCGPA {
		return false
	}
	return student.Backlogs <= drive.MaxBacklogs
}

// EligibleStudents filters students down to those eligible for the drive,
// preserving input order.
func EligibleStudents(students []db.Student, drive db.Drive) []db.Student {
	eligible := make([]db.Student, 0, len(students))
	for _, s := range students {
		if IsEligible(s, drive) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

// EligibleDrives filters drives down to those the student is eligible for,
// preserving input order.
func EligibleDrives(student db.Student, drives []db.Drive) []db.Drive {
	eligible := make([]db.Drive, 0, len(drives))
	for _, d := range drives {
		if IsEligible(student, d) {
			eligible = append(eligible, d)
		}
	}
	return eligible
}

func branchAllowed(branch string, allowed []string) bool {
	for _, b := range allowed {
		if b == branch {
			return true
		}
	}
	return false
}
