package planner

import (
	"sort"
	"strings"
)

// Confidence grades how well a member's designation fits a required role.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

var confidenceRank = map[Confidence]int{
	ConfidenceHigh:   0,
	ConfidenceMedium: 1,
	ConfidenceLow:    2,
}

// Member is the slice of a project member the matcher needs.
type Member struct {
	UserID      uint
	Name        string
	Designation string
}

// Suggestion is one candidate assignee for a planned task.
type Suggestion struct {
	UserID     uint       `json:"user_id"`
	Name       string     `json:"name"`
	Confidence Confidence `json:"confidence"`
}

// MatchRoleToMembers scores each member's designation against the role:
// containing the role name verbatim or at least two role keywords is a high
// match, exactly one keyword is medium. When nobody matches at all, every
// member is returned at low confidence so the caller never renders an empty
// assignee list. Results are ordered by confidence, stable within a grade.
func MatchRoleToMembers(role Role, members []Member) []Suggestion {
	var suggestions []Suggestion

	roleName := strings.ToLower(role.String())
	keywords := role.Keywords()

	for _, m := range members {
		if m.Designation == "" {
			continue
		}
		designation := strings.ToLower(m.Designation)

		if strings.Contains(designation, roleName) {
			suggestions = append(suggestions, Suggestion{UserID: m.UserID, Name: m.Name, Confidence: ConfidenceHigh})
			continue
		}

		hits := 0
		for _, kw := range keywords {
			if strings.Contains(designation, kw) {
				hits++
			}
		}
		switch {
		case hits >= 2:
			suggestions = append(suggestions, Suggestion{UserID: m.UserID, Name: m.Name, Confidence: ConfidenceHigh})
		case hits == 1:
			suggestions = append(suggestions, Suggestion{UserID: m.UserID, Name: m.Name, Confidence: ConfidenceMedium})
		}
	}

	if len(suggestions) == 0 {
		for _, m := range members {
			suggestions = append(suggestions, Suggestion{UserID: m.UserID, Name: m.Name, Confidence: ConfidenceLow})
		}
		return suggestions
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return confidenceRank[suggestions[i].Confidence] < confidenceRank[suggestions[j].Confidence]
	})

	return suggestions
}
