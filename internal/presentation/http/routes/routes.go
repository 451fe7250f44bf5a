package routes

import (
	"net/http"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/config"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/handler"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/middleware"
	"github.com/agustiinveraa/inmoflow/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler for route registration
type Handlers struct {
	Auth      *handler.AuthHandler
	Agency    *handler.AgencyHandler
	Client    *handler.ClientHandler
	Property  *handler.PropertyHandler
	Visit     *handler.VisitHandler
	Media     *handler.MediaHandler
	Dashboard *handler.DashboardHandler
}

// Setup registers all routes on the given engine.
//
// Three tiers of access: public (auth endpoints), authenticated (profile and
// agency creation), and agency-scoped (everything tenant-owned, behind the
// membership resolution middleware).
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	agencySvc *service.AgencyService,
	idempotencyRepo repository.IdempotencyRepository,
	h Handlers,
) {
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(&cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rateLimiter := middleware.NewAgencyRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	v1 := router.Group("/api/v1")

	// Public auth endpoints
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}

	// Authenticated but not yet agency-scoped: profile management and
	// agency creation work before the user belongs to any agency.
	authed := v1.Group("")
	authed.Use(middleware.Auth(jwtManager))
	{
		authed.GET("/auth/me", h.Auth.Me)
		authed.PATCH("/auth/me", h.Auth.UpdateProfile)
		authed.POST("/auth/change-password", h.Auth.ChangePassword)
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.POST("/agencies", h.Agency.Create)
	}

	// Agency-scoped: membership resolved fresh per request, agency stamped
	// onto the context, per-agency rate limiting on top.
	scoped := v1.Group("")
	scoped.Use(middleware.Auth(jwtManager))
	scoped.Use(middleware.RequireAgency(agencySvc))
	scoped.Use(rateLimiter.Middleware())
	{
		agency := scoped.Group("/agency")
		{
			agency.GET("", h.Agency.Get)

			// Member management is admin territory; non-admins bounce
			// before anything is fetched.
			admin := agency.Group("")
			admin.Use(middleware.RequireAgencyAdmin())
			{
				admin.PATCH("", h.Agency.Update)
				admin.GET("/members", h.Agency.ListMembers)
				admin.POST("/members", h.Agency.InviteMember)
				admin.PATCH("/members/:id/role", h.Agency.SetMemberAdmin)
				admin.DELETE("/members/:id", h.Agency.RemoveMember)
			}
		}

		clients := scoped.Group("/clients")
		{
			clients.GET("", h.Client.List)
			clients.POST("", h.Client.Create)
			clients.GET("/:id", h.Client.Get)
			clients.PATCH("/:id", h.Client.Update)
			clients.DELETE("/:id", h.Client.Delete)
		}

		properties := scoped.Group("/properties")
		{
			properties.GET("", h.Property.List)
			properties.POST("", middleware.Idempotency(idempotencyRepo), h.Property.Create)
			properties.GET("/:id", h.Property.Get)
			properties.PATCH("/:id", h.Property.Update)
			properties.DELETE("/:id", h.Property.Delete)
			properties.POST("/:id/images", h.Media.UploadImages)
			properties.DELETE("/:id/images", h.Media.DeleteImage)
		}

		visits := scoped.Group("/visits")
		{
			visits.GET("", h.Visit.List)
			visits.GET("/calendar", h.Visit.Calendar)
			// A retried scheduling request must not double-book the slot
			visits.POST("", middleware.IdempotencyRequired(idempotencyRepo), h.Visit.Create)
			visits.GET("/:id", h.Visit.Get)
			visits.PATCH("/:id", h.Visit.Update)
			visits.DELETE("/:id", h.Visit.Delete)
		}

		scoped.GET("/dashboard/stats", h.Dashboard.Stats)
	}
}
