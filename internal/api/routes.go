package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// NewRouter builds the gin engine with recovery, request logging and all
// routes.
func NewRouter(logger *slog.Logger, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.form)
	r.POST("/generate", h.cardHandler)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/card", h.cardHandler)
		api.GET("/qr", h.qrHandler)
	}
}
