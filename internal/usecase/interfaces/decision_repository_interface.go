package interfaces

import (
	"context"

	"assessment_frc/internal/domain/entities"
)

// IDecisionRepository is the storage of the decision ledger.
//
// Writes are conditional:
//   - CreateIfAbsent never overwrites; it reports whether it created the record
//   - UpdateIfVersion succeeds only when the stored version equals
//     expectedVersion and the stored record is not stale, and stores the
//     record live with version expectedVersion+1; otherwise it returns
//     ErrConditionFailed
//   - SetStale only flips the stale flag; it never touches status or version
//
// Get returns a zero Decision (empty LineItemID) when the record is missing.

type IDecisionRepository interface {
	Get(ctx context.Context, assessmentID, lineItemID string) (entities.Decision, error)
	ListByAssessment(ctx context.Context, assessmentID string) ([]entities.Decision, error)
	CreateIfAbsent(ctx context.Context, d entities.Decision) (bool, error)
	UpdateIfVersion(ctx context.Context, d entities.Decision, expectedVersion int64) (entities.Decision, error)
	SetStale(ctx context.Context, assessmentID string, lineItemIDs []string, stale bool) error
}
