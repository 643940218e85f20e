package v1

import (
	"net/http"

	"github.com/JRamonda/my-cv/config"
	"github.com/JRamonda/my-cv/internal/delivery/http/middleware"
	"github.com/JRamonda/my-cv/internal/delivery/http/response"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ProfileUC    domain.ProfileUsecase
	ExperienceUC domain.ResourceUsecase[domain.Experience]
	ProjectUC    domain.ResourceUsecase[domain.Project]
	SkillUC      domain.ResourceUsecase[domain.Skill]
	TechStackUC  domain.ResourceUsecase[domain.TechStack]
	ReferenceUC  domain.ResourceUsecase[domain.Reference]
	Tokens       *auth.TokenManager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Payloads with unknown fields are rejected, not silently dropped.
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginRateLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		deps.Config.RateLimitWindow(),
	))
	NewAuthHandler(api, deps.AuthUC, loginRateLimit)

	// Reads are public; mutations sit behind the bearer-token gate.
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewProfileHandler(api, protected, deps.ProfileUC)
		NewExperienceHandler(api, protected, deps.ExperienceUC)
		NewProjectHandler(api, protected, deps.ProjectUC)
		NewSkillHandler(api, protected, deps.SkillUC)
		NewTechStackHandler(api, protected, deps.TechStackUC)
		NewReferenceHandler(api, protected, deps.ReferenceUC)
	}

	return r
}
