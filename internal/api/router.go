package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes mounts the CMS backend endpoints. h must have a writer.
func RegisterAdminRoutes(router *gin.Engine, h *LayoutHandler) {
	admin := router.Group("/admin")
	admin.GET("/site/:slug/layout", h.Get)
	admin.PUT("/site/:slug/layout", h.Put)
}

// RegisterPublicRoutes mounts the web backend endpoint.
func RegisterPublicRoutes(router *gin.Engine, h *LayoutHandler) {
	router.GET("/site/:slug/layout", h.Get)
}
