package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvitha/outfit-advisor/internal/domain/auth"
	"github.com/anvitha/outfit-advisor/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/", handler.RecommendForm)
	router.POST("/get_recommendation", handler.RecommendFormSubmit)
	router.GET("/wardrobe/:image", handler.WardrobeImage)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)
		api.GET("/wardrobe", handler.ListWardrobe)
		api.GET("/outfits/trending", handler.Trending)

		authed := api.Group("")
		authed.Use(authMiddleware(authSvc))
		{
			authed.PUT("/auth/preferences", handler.UpdatePreferences)
			authed.POST("/outfits/recommend", handler.Recommend)
		}
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
