package v1

import (
	"fmt"
	"net/http"

	"github.com/JRamonda/my-cv/internal/delivery/http/response"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/apperror"
	"github.com/JRamonda/my-cv/pkg/validation"

	"github.com/gin-gonic/gin"
)

// CreateRequest is a creation payload that knows how to build its entity.
type CreateRequest[T any] interface {
	ToModel() *T
}

// UpdateRequest is a partial payload; ApplyTo copies only the fields the
// request actually carried onto the stored entity.
type UpdateRequest[T any] interface {
	ApplyTo(*T)
}

// crudHandler is the HTTP side of the generic resource engine. One
// registration per resource wires the uniform five-operation surface:
// public list/get, token-gated create/update/delete.
type crudHandler[T any, C CreateRequest[T], U UpdateRequest[T]] struct {
	name string
	uc   domain.ResourceUsecase[T]
}

// RegisterCrudRoutes mounts a resource at path on the public and
// protected groups.
func RegisterCrudRoutes[T any, C CreateRequest[T], U UpdateRequest[T]](
	public, protected *gin.RouterGroup,
	path, name string,
	uc domain.ResourceUsecase[T],
) {
	h := &crudHandler[T, C, U]{name: name, uc: uc}

	pub := public.Group(path)
	{
		pub.GET("", h.List)
		pub.GET("/:id", h.Get)
	}

	prot := protected.Group(path)
	{
		prot.POST("", h.Create)
		prot.PUT("/:id", h.Update)
		prot.DELETE("/:id", h.Delete)
	}
}

func (h *crudHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	m := req.ToModel()
	if err := h.uc.Create(c, m); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, fmt.Sprintf("%s created", h.name), m)
}

func (h *crudHandler[T, C, U]) List(c *gin.Context) {
	items, err := h.uc.List(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("%s list", h.name), items)
}

func (h *crudHandler[T, C, U]) Get(c *gin.Context) {
	m, err := h.uc.Get(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("%s details", h.name), m)
}

func (h *crudHandler[T, C, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	m, err := h.uc.Update(c, c.Param("id"), func(m *T) { req.ApplyTo(m) })
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("%s updated", h.name), m)
}

func (h *crudHandler[T, C, U]) Delete(c *gin.Context) {
	m, err := h.uc.Delete(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("%s deleted", h.name), m)
}

// toPtr converts an empty string to a nil pointer, so optional fields
// persist as NULL instead of "".
func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
