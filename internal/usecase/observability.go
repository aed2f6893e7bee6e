package usecase

import (
	"context"
	"log"
	"time"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
)

type noopMetrics struct{}

func (noopMetrics) ObserveReconciliation(time.Duration, error) {}
func (noopMetrics) DecisionRecorded(entities.DecisionStatus) {}
func (noopMetrics) DecisionConflict() {}
func (noopMetrics) AuditPublishFailed() {}

func metricsOrNoop(m interfaces.IFRCMetrics) interfaces.IFRCMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

// publishAudit never fails the caller; a lost event is logged and counted.
func publishAudit(ctx context.Context, sink interfaces.IAuditSink, metrics interfaces.IFRCMetrics, e entities.AuditEvent) {
	if sink == nil {
		return
	}
	if err := sink.Publish(ctx, e); err != nil {
		log.Printf("[frc][audit] publish failed type=%s assessment_id=%s line_item_id=%s err=%v", e.Type, e.AssessmentID, e.LineItemID, err)
		metrics.AuditPublishFailed()
	}
}
