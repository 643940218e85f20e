package v1

import (
	"net/http"

	"github.com/JRamonda/my-cv/internal/delivery/http/response"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/apperror"
	"github.com/JRamonda/my-cv/pkg/validation"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the singleton profile resource. Unlike the CRUD
// resources there is no :id segment; the canonical row is implicit.
type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	public.GET("/profile", handler.Get)

	prot := protected.Group("/profile")
	{
		prot.POST("", handler.Create)
		prot.PUT("", handler.Update)
		prot.DELETE("", handler.Delete)
	}
}

type CreateProfileRequest struct {
	Name         string `json:"name" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Bio          string `json:"bio" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	LinkedIn     string `json:"linkedin"`
	GitHub       string `json:"github"`
	Website      string `json:"website"`
	ProfileImage string `json:"profileImage"`
	ResumeFile   string `json:"resumeFile"`
}

func (r CreateProfileRequest) ToModel() *domain.Profile {
	return &domain.Profile{
		Name:         r.Name,
		Title:        r.Title,
		Bio:          r.Bio,
		Location:     r.Location,
		Email:        r.Email,
		Phone:        toPtr(r.Phone),
		LinkedIn:     toPtr(r.LinkedIn),
		GitHub:       toPtr(r.GitHub),
		Website:      toPtr(r.Website),
		ProfileImage: toPtr(r.ProfileImage),
		ResumeFile:   toPtr(r.ResumeFile),
	}
}

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone"`
	LinkedIn     *string `json:"linkedin"`
	GitHub       *string `json:"github"`
	Website      *string `json:"website"`
	ProfileImage *string `json:"profileImage"`
	ResumeFile   *string `json:"resumeFile"`
}

func (r UpdateProfileRequest) ApplyTo(p *domain.Profile) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = toPtr(*r.Phone)
	}
	if r.LinkedIn != nil {
		p.LinkedIn = toPtr(*r.LinkedIn)
	}
	if r.GitHub != nil {
		p.GitHub = toPtr(*r.GitHub)
	}
	if r.Website != nil {
		p.Website = toPtr(*r.Website)
	}
	if r.ProfileImage != nil {
		p.ProfileImage = toPtr(*r.ProfileImage)
	}
	if r.ResumeFile != nil {
		p.ResumeFile = toPtr(*r.ResumeFile)
	}
}

// CreateProfile godoc
// @Summary      Create profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      CreateProfileRequest  true  "Profile JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile [post]
// @Security     BearerAuth
func (h *ProfileHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	p := req.ToModel()
	if err := h.profileUC.Create(c, p); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", p)
}

// GetProfile godoc
// @Summary      Get profile (public)
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profileUC.Get(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile details", p)
}

// UpdateProfile godoc
// @Summary      Update profile (creates it when absent)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Partial profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	p, err := h.profileUC.Update(c, func(p *domain.Profile) { req.ApplyTo(p) })
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", p)
}

// DeleteProfile godoc
// @Summary      Delete profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [delete]
// @Security     BearerAuth
func (h *ProfileHandler) Delete(c *gin.Context) {
	p, err := h.profileUC.Delete(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted", p)
}
