package main

import (
	"context"
	"net/http"
	"time"

	"book-catalog/internal/shared/middleware"
	"book-catalog/internal/shared/response"
	"book-catalog/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
		c.BookHandler.RegisterRoutes(v1)
	}

	return router
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		checks := gin.H{
			"catalog": gin.H{"books": len(c.Catalog.Books), "source": c.Config.Catalog.Source},
		}
		status := http.StatusOK

		if c.DB != nil {
			if err := c.DB.HealthCheck(checkCtx); err != nil {
				checks["database"] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				checks["database"] = "ok"
			}
		}

		if c.Cache != nil {
			// cache is optional: report but stay healthy
			if err := c.Cache.Ping(checkCtx); err != nil {
				checks["cache"] = err.Error()
			} else {
				checks["cache"] = "ok"
			}
		}

		ctx.JSON(status, gin.H{
			"status":    http.StatusText(status),
			"version":   c.Config.App.Version,
			"checks":    checks,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
