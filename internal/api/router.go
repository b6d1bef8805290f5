package api

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/auth"
	"github.com/jengzang/dispatch-backend-go/internal/config"
	"github.com/jengzang/dispatch-backend-go/internal/handler"
	"github.com/jengzang/dispatch-backend-go/internal/middleware"
	"github.com/jengzang/dispatch-backend-go/internal/service"
)

// SetupRouter 设置路由，返回的 stop 用于释放后台资源
func SetupRouter(cfg *config.Config, dispatchService *service.DispatchService) (*gin.Engine, func()) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	stop := func() {}
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
		r.Use(middleware.RateLimit(limiter))
		stop = limiter.Stop
	}

	searchHandler := handler.NewSearchHandler(dispatchService)
	routeHandler := handler.NewRouteHandler(dispatchService)
	driverHandler := handler.NewDriverHandler(dispatchService)
	fleetHandler := handler.NewFleetHandler(dispatchService)
	statsHandler := handler.NewStatsHandler(dispatchService)
	adminHandler := handler.NewAdminHandler(dispatchService, cfg.Data.LoadTimeout)

	// 健康检查
	r.GET("/health", statsHandler.Health)

	// API 路由组
	v1 := r.Group("/api/v1")
	{
		v1.GET("/stats", statsHandler.GetStats)
		v1.GET("/cities", searchHandler.Cities)
		v1.GET("/search", searchHandler.Search)
		v1.GET("/fleet", fleetHandler.GetFleet)

		routes := v1.Group("/routes")
		{
			routes.GET("/top", routeHandler.GetTopRoutes)
			routes.GET("/details", routeHandler.GetRouteDetails)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.GET("/top", driverHandler.GetTopDrivers)
			drivers.GET("/:name/details", driverHandler.GetDriverDetails)
		}

		admin := v1.Group("/admin")
		if cfg.AuthEnabled {
			admin.Use(middleware.RequireRole(cfg.JWTSecret, auth.RoleAdmin))
		} else {
			log.Println("Warning: admin endpoints are not protected (AUTH_ENABLED=false)")
		}
		admin.POST("/reload", adminHandler.Reload)
	}

	return r, stop
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	c.ExposeHeaders = []string{"X-Request-ID"}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
