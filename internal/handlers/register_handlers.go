package handlers

import (
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/cmd/docs"
	portssvc "github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/core/ports/services"
	"github.com/SeoulDonghaengLikeBike/LikeBike-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)

	// Everything the app consumes lives under /users and /quizzes. Auth is
	// applied per-route so the public reads stay open.
	users := r.Group("/users")
	registerAuthRoutes(users, services.Auth)
	registerUserRoutes(users, cfg.JWTSecret, services.User)
	registerBikeLogRoutes(users, cfg.JWTSecret, services.BikeLog)

	registerQuizRoutes(&r.RouterGroup, cfg.JWTSecret, services.Quiz)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
