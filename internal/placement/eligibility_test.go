package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suhan648/placementpro/internal/db"
)

func TestIsEligible_AllCriteriaMet(t *testing.T) {
	student := db.Student{Branch: "CSE", CGPA: 8.2, Backlogs: 0}
	drive := db.Drive{AllowedBranches: []string{"CSE", "IT"}, MinCGPA: 7.0, MaxBacklogs: 0}

	assert.True(t, IsEligible(student, drive))
}

func TestIsEligible_ExactBoundaries(t *testing.T) {
	// CGPA equal to the cutoff and backlogs equal to the cap both pass.
	student := db.Student{Branch: "IT", CGPA: 7.0, Backlogs: 2}
	drive := db.Drive{AllowedBranches: []string{"IT"}, MinCGPA: 7.0, MaxBacklogs: 2}

	assert.True(t, IsEligible(student, drive))
}

func TestIsEligible_BranchNotAllowed(t *testing.T) {
	student := db.Student{Branch: "ME", CGPA: 9.5, Backlogs: 0}
	drive := db.Drive{AllowedBranches: []string{"CSE", "IT"}, MinCGPA: 7.0, MaxBacklogs: 0}

	assert.False(t, IsEligible(student, drive))
}

func TestIsEligible_CGPABelowCutoff(t *testing.T) {
	student := db.Student{Branch: "CSE", CGPA: 6.99, Backlogs: 0}
	drive := db.Drive{AllowedBranches: []string{"CSE"}, MinCGPA: 7.0, MaxBacklogs: 0}

	assert.False(t, IsEligible(student, drive))
}

func TestIsEligible_TooManyBacklogs(t *testing.T) {
	student := db.Student{Branch: "CSE", CGPA: 8.0, Backlogs: 3}
	drive := db.Drive{AllowedBranches: []string{"CSE"}, MinCGPA: 7.0, MaxBacklogs: 2}

	assert.False(t, IsEligible(student, drive))
}

func TestIsEligible_UnsetCGPACountsAsZero(t *testing.T) {
	// A student who never filled in a CGPA fails any positive cutoff.
	student := db.Student{Branch: "CSE"}
	drive := db.Drive{AllowedBranches: []string{"CSE"}, MinCGPA: 6.0, MaxBacklogs: 0}

	assert.False(t, IsEligible(student, drive))
}

func TestIsEligible_ZeroCutoffAdmitsEmptyProfile(t *testing.T) {
	student := db.Student{Branch: "CSE"}
	drive := db.Drive{AllowedBranches: []string{"CSE"}, MinCGPA: 0, MaxBacklogs: 0}

	assert.True(t, IsEligible(student, drive))
}

func TestIsEligible_EmptyAllowedBranches(t *testing.T) {
	// A drive with no allowed branches admits nobody.
	student := db.Student{Branch: "CSE", CGPA: 9.0}
	drive := db.Drive{MinCGPA: 0, MaxBacklogs: 10}

	assert.False(t, IsEligible(student, drive))
}

func TestIsEligible_BranchMatchIsCaseSensitive(t *testing.T) {
	// Branches come from a fixed enum, so there is no folding.
	student := db.Student{Branch: "cse", CGPA: 9.0}
	drive := db.Drive{AllowedBranches: []string{"CSE"}, MinCGPA: 0, MaxBacklogs: 10}

	assert.False(t, IsEligible(student, drive))
}

func TestEligibleStudents_PreservesOrder(t *testing.T) {
	students := []db.Student{
		{RollNumber: "21CS001", Branch: "CSE", CGPA: 8.0},
		{RollNumber: "21ME002", Branch: "ME", CGPA: 9.0},
		{RollNumber: "21CS003", Branch: "CSE", CGPA: 7.5},
		{RollNumber: "21CS004", Branch: "CSE", CGPA: 6.0},
	}
	drive := db.Drive{AllowedBranches: []string{"CSE"}, MinCGPA: 7.0, MaxBacklogs: 0}

	eligible := EligibleStudents(students, drive)

	rolls := make([]string, 0, len(eligible))
	for _, s := range eligible {
		rolls = append(rolls, s.RollNumber)
	}
	assert.Equal(t, []string{"21CS001", "21CS003"}, rolls)
}

func TestEligibleStudents_NoneEligible(t *testing.T) {
	students := []db.Student{
		{Branch: "ME", CGPA: 9.0},
		{Branch: "CE", CGPA: 9.0},
	}
	drive := db.Drive{AllowedBranches: []string{"CSE"}, MinCGPA: 7.0}

	eligible := EligibleStudents(students, drive)

	assert.Empty(t, eligible)
	assert.NotNil(t, eligible)
}

func TestEligibleDrives_PreservesOrder(t *testing.T) {
	student := db.Student{Branch: "ECE", CGPA: 7.8, Backlogs: 1}
	drives := []db.Drive{
		{CompanyName: "Acme", AllowedBranches: []string{"ECE"}, MinCGPA: 7.0, MaxBacklogs: 1},
		{CompanyName: "Globex", AllowedBranches: []string{"CSE"}, MinCGPA: 7.0, MaxBacklogs: 1},
		{CompanyName: "Initech", AllowedBranches: []string{"ECE", "EEE"}, MinCGPA: 6.5, MaxBacklogs: 2},
		{CompanyName: "Umbrella", AllowedBranches: []string{"ECE"}, MinCGPA: 8.0, MaxBacklogs: 1},
	}

	eligible := EligibleDrives(student, drives)

	names := make([]string, 0, len(eligible))
	for _, d := range eligible {
		names = append(names, d.CompanyName)
	}
	assert.Equal(t, []string{"Acme", "Initech"}, names)
}
