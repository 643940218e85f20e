package v1

import (
	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/gin-gonic/gin"
)

// NewProjectHandler mounts the project resource.
func NewProjectHandler(public, protected *gin.RouterGroup, uc domain.ResourceUsecase[domain.Project]) {
	RegisterCrudRoutes[domain.Project, CreateProjectRequest, UpdateProjectRequest](
		public, protected, "/projects", "Project", uc,
	)
}

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	LongDesc     string   `json:"longDesc"`
	Images       []string `json:"images"`
	DemoURL      string   `json:"demoUrl"`
	RepoURL      string   `json:"repoUrl"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
	SortOrder    int      `json:"order"`
}

func (r CreateProjectRequest) ToModel() *domain.Project {
	category := r.Category
	if category == "" {
		category = "web"
	}
	return &domain.Project{
		Title:        r.Title,
		Description:  r.Description,
		LongDesc:     toPtr(r.LongDesc),
		Images:       orEmpty(r.Images),
		DemoURL:      toPtr(r.DemoURL),
		RepoURL:      toPtr(r.RepoURL),
		Technologies: orEmpty(r.Technologies),
		Highlights:   orEmpty(r.Highlights),
		Category:     category,
		Featured:     r.Featured,
		SortOrder:    r.SortOrder,
	}
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	LongDesc     *string   `json:"longDesc"`
	Images       *[]string `json:"images"`
	DemoURL      *string   `json:"demoUrl"`
	RepoURL      *string   `json:"repoUrl"`
	Technologies *[]string `json:"technologies"`
	Highlights   *[]string `json:"highlights"`
	Category     *string   `json:"category"`
	Featured     *bool     `json:"featured"`
	SortOrder    *int      `json:"order"`
}

func (r UpdateProjectRequest) ApplyTo(p *domain.Project) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.LongDesc != nil {
		p.LongDesc = toPtr(*r.LongDesc)
	}
	if r.Images != nil {
		p.Images = orEmpty(*r.Images)
	}
	if r.DemoURL != nil {
		p.DemoURL = toPtr(*r.DemoURL)
	}
	if r.RepoURL != nil {
		p.RepoURL = toPtr(*r.RepoURL)
	}
	if r.Technologies != nil {
		p.Technologies = orEmpty(*r.Technologies)
	}
	if r.Highlights != nil {
		p.Highlights = orEmpty(*r.Highlights)
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	if r.SortOrder != nil {
		p.SortOrder = *r.SortOrder
	}
}
