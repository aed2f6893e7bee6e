package interfaces

import (
	"time"

	"assessment_frc/internal/domain/entities"
)

// IFRCMetrics records operational counters of the FRC use cases.
type IFRCMetrics interface {
	ObserveReconciliation(duration time.Duration, err error)
	DecisionRecorded(status entities.DecisionStatus)
	DecisionConflict()
	AuditPublishFailed()
}
