package v1

import (
	"time"

	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/gin-gonic/gin"
)

// NewExperienceHandler mounts the experience resource.
func NewExperienceHandler(public, protected *gin.RouterGroup, uc domain.ResourceUsecase[domain.Experience]) {
	RegisterCrudRoutes[domain.Experience, CreateExperienceRequest, UpdateExperienceRequest](
		public, protected, "/experience", "Experience", uc,
	)
}

type CreateExperienceRequest struct {
	Company      string   `json:"company" binding:"required"`
	Position     string   `json:"position" binding:"required"`
	StartDate    string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string   `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Current      bool     `json:"current"`
	Description  string   `json:"description" binding:"required"`
	Achievements []string `json:"achievements"`
	Challenges   []string `json:"challenges"`
	Learnings    []string `json:"learnings"`
	Technologies []string `json:"technologies"`
	SortOrder    int      `json:"order"`
}

func (r CreateExperienceRequest) ToModel() *domain.Experience {
	e := &domain.Experience{
		Company:      r.Company,
		Position:     r.Position,
		StartDate:    mustParseDate(r.StartDate),
		EndDate:      parseDatePtr(r.EndDate),
		Current:      r.Current,
		Description:  r.Description,
		Achievements: orEmpty(r.Achievements),
		Challenges:   orEmpty(r.Challenges),
		Learnings:    orEmpty(r.Learnings),
		Technologies: orEmpty(r.Technologies),
		SortOrder:    r.SortOrder,
	}
	// An ongoing position has no end date.
	if e.Current {
		e.EndDate = nil
	}
	return e
}

type UpdateExperienceRequest struct {
	Company      *string   `json:"company"`
	Position     *string   `json:"position"`
	StartDate    *string   `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate      *string   `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Current      *bool     `json:"current"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Challenges   *[]string `json:"challenges"`
	Learnings    *[]string `json:"learnings"`
	Technologies *[]string `json:"technologies"`
	SortOrder    *int      `json:"order"`
}

func (r UpdateExperienceRequest) ApplyTo(e *domain.Experience) {
	if r.Company != nil {
		e.Company = *r.Company
	}
	if r.Position != nil {
		e.Position = *r.Position
	}
	if r.StartDate != nil {
		e.StartDate = mustParseDate(*r.StartDate)
	}
	if r.EndDate != nil {
		e.EndDate = parseDatePtr(*r.EndDate)
	}
	if r.Current != nil {
		e.Current = *r.Current
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Achievements != nil {
		e.Achievements = orEmpty(*r.Achievements)
	}
	if r.Challenges != nil {
		e.Challenges = orEmpty(*r.Challenges)
	}
	if r.Learnings != nil {
		e.Learnings = orEmpty(*r.Learnings)
	}
	if r.Technologies != nil {
		e.Technologies = orEmpty(*r.Technologies)
	}
	if r.SortOrder != nil {
		e.SortOrder = *r.SortOrder
	}
	if e.Current {
		e.EndDate = nil
	}
}

// mustParseDate is only called on fields the datetime binding tag has
// already validated.
func mustParseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := mustParseDate(s)
	return &t
}

// orEmpty keeps list fields as [] rather than null in responses.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
