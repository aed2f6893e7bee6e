package routes

import (
	"context"
	"log"
	"net/http"

	_ "assessment_frc/docs" // generated by swag init
	"assessment_frc/internal/adapter/http/handlers"
	"assessment_frc/internal/infrastructure/bootstrap"
	"assessment_frc/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	settings, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	container, err := bootstrap.Build(context.Background(), settings, reg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer container.Close()

	router := NewRouter(HandlersFor(container), promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	log.Printf("[frc][http] listening port=%s backend=%s", settings.Port, settings.PersistenceBackend)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// HandlersFor builds the HTTP handlers over the wired use cases.
func HandlersFor(c *bootstrap.Container) Handlers {
	return Handlers{
		Snapshots:   handlers.NewLineItemSnapshotHandler(c.Snapshots),
		Decisions:   handlers.NewDecisionHandler(c.Ledger),
		FRC:         handlers.NewFRCHandler(c.FRC),
		Invoices:    handlers.NewInvoiceHandler(c.Invoices),
		Settlements: handlers.NewSettlementHandler(c.Settlements),
	}
}

// NewRouter mounts the API, swagger and metrics endpoints. metricsHandler may
// be nil.
func NewRouter(h Handlers, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFRCRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
