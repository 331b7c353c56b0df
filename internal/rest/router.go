package rest

import (
	"net/http"
	"strings"

	"bulk-be/internal/logger"
	"bulk-be/internal/metrics"
	"bulk-be/internal/order"
	"bulk-be/internal/product"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes. Rate limiting is passed in by the
// caller so tests can exercise handlers without tripping limits.
func NewRouter(
	productSvc product.Service,
	orderSvc order.Service,
	reg *metrics.Registry,
	corsOrigins string,
	extra ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestID())
	r.Use(logger.RequestLogger())

	corsCfg := cors.DefaultConfig()
	if corsOrigins == "" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(corsOrigins, ",")
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID", "X-Device-ID"}
	corsCfg.ExposeHeaders = []string{HeaderDataSource, "X-Request-ID"}
	r.Use(cors.New(corsCfg))

	r.Use(func(c *gin.Context) {
		reg.Requests.Inc()
		c.Next()
	})

	for _, mw := range extra {
		r.Use(mw)
	}

	ph := &productHandler{svc: productSvc, reg: reg}
	oh := &orderHandler{svc: orderSvc, reg: reg}

	r.GET("/products", ph.list)
	r.GET("/products/:id", ph.get)
	r.POST("/products", ph.create)
	r.PUT("/products/:id", ph.update)
	r.DELETE("/products/:id", ph.delete)

	r.GET("/orders", oh.list)
	r.GET("/orders/:id", oh.get)
	r.POST("/orders", oh.create)
	r.PUT("/orders/:id", oh.updateStatus)

	r.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Snapshot())
	})

	return r
}
