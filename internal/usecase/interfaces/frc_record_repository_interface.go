package interfaces

import (
	"context"

	"assessment_frc/internal/domain/entities"
)

// IFRCRecordRepository archives completed FRCs.
//
// Complete returns ErrConditionFailed when the assessment is already completed.
// Get returns a zero record (empty AssessmentID) for an open FRC.

type IFRCRecordRepository interface {
	Get(ctx context.Context, assessmentID string) (entities.FRCRecord, error)
	Complete(ctx context.Context, r entities.FRCRecord) (entities.FRCRecord, error)
}
