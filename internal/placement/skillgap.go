package placement

import (
	"math"
	"strings"
)

// GapAnalysis is the result of comparing a candidate's skills against a
// role's requirements.
type GapAnalysis struct {
	Role            string   `json:"role,omitempty"`
	Required        []string `json:"required_skills"`
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	CoveragePercent int      `json:"coverage_percent"`
	Insight         string   `json:"insight,omitempty"`
}

// AnalyzeSkillGap partitions the required skills into matched and missing
// based on the candidate's skills. Skills are compared case-insensitively
// with surrounding whitespace ignored, and both output lists preserve the
// order of the required list. Coverage is matched over required as a
// percentage, rounded half away from zero; an empty requirement list yields
// zero coverage rather than a division by zero.
func AnalyzeSkillGap(candidateSkills, requiredSkills []string) GapAnalysis {
	required := normalizeSkills(requiredSkills)

	have := make(map[string]bool, len(candidateSkills))
	for _, sk := range normalizeSkills(candidateSkills) {
		have[sk] = true
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, sk := range required {
		if have[sk] {
			matched = append(matched, sk)
		} else {
			missing = append(missing, sk)
		}
	}

	pct := 0
	if len(required) > 0 {
		pct = int(math.Round(float64(len(matched)) / float64(len(required)) * 100))
	}

	return GapAnalysis{
		Required:        required,
		Matched:         matched,
		Missing:         missing,
		CoveragePercent: pct,
	}
}

// SplitSkills parses a comma-separated skill list into normalized tokens,
// dropping blanks.
func SplitSkills(raw string) []string {
	return normalizeSkills(strings.Split(raw, ","))
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		sk = strings.ToLower(strings.TrimSpace(sk))
		if sk != "" {
			out = append(out, sk)
		}
	}
	return out
}
