package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts every endpoint on r.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/user-types", h.ListUserTypes)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.SearchUsers)
		api.POST("/users/list", h.ListUsers)
		api.GET("/users/:id", h.GetUserDetails)
		api.PUT("/users/:id", h.UpdateUserDetails)
		api.PATCH("/users/:id/status", h.UpdateStatus)
		api.DELETE("/users/:id", h.DeleteUser)

		api.POST("/patients", h.CreatePatient)
		api.PUT("/patients/:id", h.UpdatePatient)
	}
}
