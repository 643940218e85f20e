package v1

import (
	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/gin-gonic/gin"
)

// NewSkillHandler mounts the skill resource.
func NewSkillHandler(public, protected *gin.RouterGroup, uc domain.ResourceUsecase[domain.Skill]) {
	RegisterCrudRoutes[domain.Skill, CreateSkillRequest, UpdateSkillRequest](
		public, protected, "/skills", "Skill", uc,
	)
}

type CreateSkillRequest struct {
	Category  string `json:"category" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Level     string `json:"level" binding:"omitempty,oneof=beginner intermediate expert"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"order"`
}

func (r CreateSkillRequest) ToModel() *domain.Skill {
	level := r.Level
	if level == "" {
		level = domain.SkillLevelIntermediate
	}
	return &domain.Skill{
		Category:  r.Category,
		Name:      r.Name,
		Level:     level,
		Icon:      toPtr(r.Icon),
		SortOrder: r.SortOrder,
	}
}

type UpdateSkillRequest struct {
	Category  *string `json:"category"`
	Name      *string `json:"name"`
	Level     *string `json:"level" binding:"omitempty,oneof=beginner intermediate expert"`
	Icon      *string `json:"icon"`
	SortOrder *int    `json:"order"`
}

func (r UpdateSkillRequest) ApplyTo(s *domain.Skill) {
	if r.Category != nil {
		s.Category = *r.Category
	}
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Level != nil {
		s.Level = *r.Level
	}
	if r.Icon != nil {
		s.Icon = toPtr(*r.Icon)
	}
	if r.SortOrder != nil {
		s.SortOrder = *r.SortOrder
	}
}
