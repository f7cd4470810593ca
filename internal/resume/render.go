// Package resume renders a student's profile as a plain text resume for
// download.
package resume

import (
	"fmt"
	"strings"

	"github.com/suhan648/placementpro/internal/db"
)

const ruleWidth = 60

// Render formats the profile as a text document: name, a contact line,
// an education block, then one bulleted section per free-text profile field.
// Sections with no content are omitted entirely.
func Render(user db.User, student db.Student) string {
	var b strings.Builder

	b.WriteString(user.Name + "\n")
	if contact := contactLine(user, student); contact != "" {
		b.WriteString(contact + "\n")
	}
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	b.WriteString("\nEducation\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	fmt.Fprintf(&b, "Branch: %s\n", valueOr(student.Branch))
	fmt.Fprintf(&b, "CGPA: %s\n", cgpaValue(student.CGPA))
	fmt.Fprintf(&b, "Roll No: %s\n", valueOr(student.RollNumber))
	fmt.Fprintf(&b, "Backlogs: %d\n", student.Backlogs)

	writeSection(&b, "Technical Skills", student.Skills)
	writeSection(&b, "Projects", student.Projects)
	writeSection(&b, "Internships", student.Internships)
	writeSection(&b, "Certifications", student.Certifications)

	return b.String()
}

// Filename derives the download filename from the student's name.
func Filename(name string) string {
	base := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if base == "" {
		base = "Student"
	}
	return base + "_Resume.txt"
}

// contactLine joins whichever contact fields are present with " | ".
func contactLine(user db.User, student db.Student) string {
	parts := make([]string, 0, 4)
	for _, v := range []string{user.Email, student.Phone, student.LinkedIn, student.GitHub} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

// writeSection renders one bulleted section. The stored field is free text;
// each non-blank line becomes a bullet.
func writeSection(b *strings.Builder, title, text string) {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString("\n" + title + "\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, line := range lines {
		b.WriteString("• " + line + "\n")
	}
}

func valueOr(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// cgpaValue renders an unset CGPA as a dash rather than a misleading zero.
func cgpaValue(cgpa float64) string {
	if cgpa == 0 {
		return "-"
	}
	return fmt.Sprintf("%g", cgpa)
}
