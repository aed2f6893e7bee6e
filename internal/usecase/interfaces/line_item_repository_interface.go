package interfaces

import (
	"context"

	"assessment_frc/internal/domain/entities"
)

// ILineItemRepository persists the latest line item snapshot per assessment.
//
// The store is read-only for reconciliation; only ingestion replaces it:
//   - a snapshot is replaced as a whole, never patched
//   - GetSnapshot returns a zero snapshot (empty SnapshotID) when none exists

type ILineItemRepository interface {
	ReplaceSnapshot(ctx context.Context, s entities.LineItemSnapshot) (entities.LineItemSnapshot, error)
	GetSnapshot(ctx context.Context, assessmentID string) (entities.LineItemSnapshot, error)
}
