package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(gin.Recovery())
	r.Use(s.deps.Metrics.Middleware())
	r.Use(accessLog(s.deps.Logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.deps.Metrics.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/order", s.handleOrder)
		v1.POST("/distances", s.handleDistances)
		v1.POST("/sheets/order", s.handleSheetOrder)

		cruises := v1.Group("/cruises")
		cruises.Use(s.requireStore)
		cruises.POST("", s.handleSaveCruise)
		cruises.GET("", s.handleListCruises)
		cruises.GET("/:name", s.handleGetCruise)
		cruises.DELETE("/:name", s.handleDeleteCruise)
		cruises.GET("/:name/geojson", s.handleCruiseGeoJSON)
		cruises.POST("/:name/order", s.handleOrderCruise)
	}
}

func (s *Server) requireStore(c *gin.Context) {
	if s.deps.Store == nil {
		errUnavailable(c, "persistence is disabled")
		return
	}
	c.Next()
}
