package v1

import (
	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/gin-gonic/gin"
)

// NewTechStackHandler mounts the tech stack resource.
func NewTechStackHandler(public, protected *gin.RouterGroup, uc domain.ResourceUsecase[domain.TechStack]) {
	RegisterCrudRoutes[domain.TechStack, CreateTechStackRequest, UpdateTechStackRequest](
		public, protected, "/tech-stack", "Tech stack", uc,
	)
}

type CreateTechStackRequest struct {
	Category  string `json:"category" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	Preferred bool   `json:"preferred"`
	SortOrder int    `json:"order"`
}

func (r CreateTechStackRequest) ToModel() *domain.TechStack {
	return &domain.TechStack{
		Category:  r.Category,
		Name:      r.Name,
		Icon:      toPtr(r.Icon),
		Preferred: r.Preferred,
		SortOrder: r.SortOrder,
	}
}

type UpdateTechStackRequest struct {
	Category  *string `json:"category"`
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	Preferred *bool   `json:"preferred"`
	SortOrder *int    `json:"order"`
}

func (r UpdateTechStackRequest) ApplyTo(t *domain.TechStack) {
	if r.Category != nil {
		t.Category = *r.Category
	}
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Icon != nil {
		t.Icon = toPtr(*r.Icon)
	}
	if r.Preferred != nil {
		t.Preferred = *r.Preferred
	}
	if r.SortOrder != nil {
		t.SortOrder = *r.SortOrder
	}
}
