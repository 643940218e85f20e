package v1

import (
	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/gin-gonic/gin"
)

// NewReferenceHandler mounts the reference resource.
func NewReferenceHandler(public, protected *gin.RouterGroup, uc domain.ResourceUsecase[domain.Reference]) {
	RegisterCrudRoutes[domain.Reference, CreateReferenceRequest, UpdateReferenceRequest](
		public, protected, "/references", "Reference", uc,
	)
}

type CreateReferenceRequest struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Company      string `json:"company" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
	Testimonial  string `json:"testimonial" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	LinkedIn     string `json:"linkedin"`
	Avatar       string `json:"avatar"`
	SortOrder    int    `json:"order"`
}

func (r CreateReferenceRequest) ToModel() *domain.Reference {
	return &domain.Reference{
		Name:         r.Name,
		Position:     r.Position,
		Company:      r.Company,
		Relationship: r.Relationship,
		Testimonial:  r.Testimonial,
		Email:        toPtr(r.Email),
		Phone:        toPtr(r.Phone),
		LinkedIn:     toPtr(r.LinkedIn),
		Avatar:       toPtr(r.Avatar),
		SortOrder:    r.SortOrder,
	}
}

type UpdateReferenceRequest struct {
	Name         *string `json:"name"`
	Position     *string `json:"position"`
	Company      *string `json:"company"`
	Relationship *string `json:"relationship"`
	Testimonial  *string `json:"testimonial"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	LinkedIn     *string `json:"linkedin"`
	Avatar       *string `json:"avatar"`
	SortOrder    *int    `json:"order"`
}

func (r UpdateReferenceRequest) ApplyTo(ref *domain.Reference) {
	if r.Name != nil {
		ref.Name = *r.Name
	}
	if r.Position != nil {
		ref.Position = *r.Position
	}
	if r.Company != nil {
		ref.Company = *r.Company
	}
	if r.Relationship != nil {
		ref.Relationship = *r.Relationship
	}
	if r.Testimonial != nil {
		ref.Testimonial = *r.Testimonial
	}
	if r.Email != nil {
		ref.Email = toPtr(*r.Email)
	}
	if r.Phone != nil {
		ref.Phone = toPtr(*r.Phone)
	}
	if r.LinkedIn != nil {
		ref.LinkedIn = toPtr(*r.LinkedIn)
	}
	if r.Avatar != nil {
		ref.Avatar = toPtr(*r.Avatar)
	}
	if r.SortOrder != nil {
		ref.SortOrder = *r.SortOrder
	}
}
