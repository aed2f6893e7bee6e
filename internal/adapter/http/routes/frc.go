package routes

import (
	"assessment_frc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssessments = "/assessments/:assessment_id"
	PathFRCLine     = "/frc/lines/:line_item_id"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Snapshots   *handlers.LineItemSnapshotHandler
	Decisions   *handlers.DecisionHandler
	FRC         *handlers.FRCHandler
	Invoices    *handlers.InvoiceHandler
	Settlements *handlers.SettlementHandler
}

func addFRCRoutes(rg *gin.RouterGroup, h Handlers) {
	assessment := rg.Group(PathAssessments)
	{
		// Published by the Estimate & Additionals services.
		assessment.PUT("/line-items", h.Snapshots.PublishSnapshot)
		assessment.GET("/line-items", h.Snapshots.GetSnapshot)

		assessment.GET("/frc", h.FRC.GetFRC)
		assessment.POST("/frc/complete", h.FRC.CompleteFRC)
		assessment.GET("/frc/record", h.FRC.GetFRCRecord)
		assessment.GET("/frc/decisions", h.Decisions.ListDecisions)
	}

	line := assessment.Group(PathFRCLine)
	{
		line.PUT("/decision", h.Decisions.RecordDecision)
		line.GET("/decision", h.Decisions.GetDecision)
		line.POST("/invoices", h.Invoices.AttachInvoice)
		line.GET("/invoices", h.Invoices.ListInvoices)
		line.GET("/match", h.Invoices.GetMatch)
	}

	settlements := assessment.Group("/settlements")
	{
		settlements.POST("", h.Settlements.CreateSettlement)
		settlements.GET("", h.Settlements.ListSettlements)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
