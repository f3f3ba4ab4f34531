package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/posters", h.renderPoster)
		api.POST("/movies/:id/posters", h.generatePosters)
		api.GET("/movies/:id/qr", h.movieQR)
	}
}
