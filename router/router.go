// router/router.go

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/headwall-io/gatehouse/controller"
	"github.com/headwall-io/gatehouse/metrics"
	"github.com/headwall-io/gatehouse/middleware"
	"github.com/headwall-io/gatehouse/ratelimit"
	"github.com/headwall-io/gatehouse/service"
)

func SetupRouter(
	controllers *controller.Controllers,
	services *service.Services,
	limiter *ratelimit.Limiter,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.Principal(true))
	api.Use(middleware.TenantResolver(services.Tenant))
	api.Use(middleware.RateLimiter(limiter, "api"))

	controllers.Access.RegisterRoutes(api)
	controllers.Quota.RegisterRoutes(api)
	controllers.Tenant.RegisterRoutes(api)
	controllers.Audit.RegisterRoutes(api)

	return router
}
