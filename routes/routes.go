// Package routes assembles the HTTP router.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/task-exchange-api/config"
	"github.com/kendall-kelly/task-exchange-api/controllers"
	"github.com/kendall-kelly/task-exchange-api/middleware"
	"github.com/kendall-kelly/task-exchange-api/store"
)

// SetupRouter registers every endpoint against st
func SetupRouter(st *store.Store, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg)))

	health := controllers.NewHealthController(st)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", health.Check)
		v1.GET("/database/status", health.DatabaseStatus)
	}

	users := controllers.NewUserController(st)
	router.GET("/users", users.List)
	router.GET("/users/:id", users.Get)
	router.POST("/users", users.Create)
	router.PUT("/users/:id", users.Update)
	router.DELETE("/users/:id", users.Delete)

	offers := controllers.NewOfferController(st)
	router.GET("/offers", offers.List)
	router.GET("/offers/:id", offers.Get)
	router.POST("/offers", offers.Create)
	router.PUT("/offers/:id", offers.Update)
	router.DELETE("/offers/:id", offers.Delete)

	orders := controllers.NewOrderController(st)
	router.GET("/orders", orders.List)
	router.GET("/orders/:id", orders.Get)
	router.POST("/orders", orders.Create)
	router.PUT("/orders/:id", orders.Update)
	router.DELETE("/orders/:id", orders.Delete)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Location", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
