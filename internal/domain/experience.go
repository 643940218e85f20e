package domain

import "time"

// Experience is one entry of the work history timeline.
type Experience struct {
	Meta
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
	Challenges   []string   `json:"challenges"`
	Learnings    []string   `json:"learnings"`
	Technologies []string   `json:"technologies"`
	SortOrder    int        `json:"order"`
}
