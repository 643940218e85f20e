package v1

import (
	"net/http"

	"github.com/JRamonda/my-cv/internal/delivery/http/response"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/apperror"
	"github.com/JRamonda/my-cv/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler mounts the login endpoint. rateLimit is applied to the
// login route only.
func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase, rateLimit gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/login", rateLimit, handler.Login)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Operator login
// @Description  Exchanges credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Describe(err)))
		return
	}

	res, err := h.authUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", res)
}
