package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-backend/internal/config"
	"github.com/learnhub/learnhub-backend/internal/handler"
	"github.com/learnhub/learnhub-backend/internal/middleware"
	"github.com/learnhub/learnhub-backend/internal/response"
	"github.com/learnhub/learnhub-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Admin  *handler.AdminHandler
	User   *handler.UserHandler
	Course *handler.CourseHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response carries one.
	router.Use(response.RequestID())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── Admin Group (Instructors) ─────────────────────────────────────
	admin := router.Group("/admin")
	{
		admin.POST("/signup", handlers.Admin.Signup)
		admin.POST("/signin", handlers.Admin.Signin)

		course := admin.Group("/course", middleware.RequireAdmin(authService))
		{
			course.POST("", handlers.Admin.CreateCourse)
			course.PUT("", handlers.Admin.UpdateCourse)
			course.DELETE("/:id", handlers.Admin.DeleteCourse)
			course.GET("/bulk", handlers.Admin.ListCourses)
		}
	}

	// ─── User Group (Students) ─────────────────────────────────────────
	user := router.Group("/user")
	{
		user.POST("/signup", handlers.User.Signup)
		user.POST("/signin", handlers.User.Signin)
		user.GET("/purchases", middleware.RequireUser(authService), handlers.User.ListPurchases)
	}

	// ─── Course Group (Catalog + Purchase) ─────────────────────────────
	course := router.Group("/course")
	{
		course.GET("/preview", middleware.CacheControl(30), handlers.Course.Preview)
		course.POST("/purchase", middleware.RequireUser(authService), handlers.Course.Purchase)
	}

	return router
}
