package usecase

import (
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordDecisionInput is one human judgement on one line.
//
// ExpectedVersion is the decision_version the caller rendered. When set, the
// write only succeeds if nobody changed the line in between.
type RecordDecisionInput struct {
	AssessmentID    string
	LineItemID      string
	Status          entities.DecisionStatus
	AdjustedValue   *decimal.Decimal
	Actor           string
	ExpectedVersion *int64
}

// IDecisionLedgerUseCase owns the per-line decision records.
//
// Refresh safety comes from two rules:
//   - seeding only ever adds records, it never overwrites one
//   - lines that leave the snapshot are flagged stale, never deleted

type IDecisionLedgerUseCase interface {
	GetDecision(ctx context.Context, assessmentID, lineItemID string) (entities.Decision, error)
	ListDecisions(ctx context.Context, assessmentID string) ([]entities.Decision, error)
	RecordDecision(ctx context.Context, in RecordDecisionInput) (entities.Decision, error)
	EnsureSeeded(ctx context.Context, assessmentID string, items []entities.LineItem) error
	MarkStale(ctx context.Context, assessmentID string, absentLineItemIDs []string) error
	Sync(ctx context.Context, snapshot entities.LineItemSnapshot) ([]entities.Decision, error)
}

type DecisionLedgerUseCase struct {
	repo      interfaces.IDecisionRepository
	snapshots interfaces.ILineItemRepository
	frcRepo   interfaces.IFRCRecordRepository
	audit     interfaces.IAuditSink
	metrics   interfaces.IFRCMetrics
}

var _ IDecisionLedgerUseCase = (*DecisionLedgerUseCase)(nil)

func NewDecisionLedgerUseCase(repo interfaces.IDecisionRepository, snapshots interfaces.ILineItemRepository, frcRepo interfaces.IFRCRecordRepository, audit interfaces.IAuditSink, metrics interfaces.IFRCMetrics) *DecisionLedgerUseCase {
	return &DecisionLedgerUseCase{
		repo:      repo,
		snapshots: snapshots,
		frcRepo:   frcRepo,
		audit:     audit,
		metrics:   metricsOrNoop(metrics),
	}
}

func (u *DecisionLedgerUseCase) GetDecision(ctx context.Context, assessmentID, lineItemID string) (entities.Decision, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	lineItemID = strings.TrimSpace(lineItemID)
	if assessmentID == "" {
		return entities.Decision{}, ErrInvalidAssessmentID
	}
	if lineItemID == "" {
		return entities.Decision{}, ErrInvalidLineItemID
	}

	d, err := u.repo.Get(ctx, assessmentID, lineItemID)
	if err != nil {
		return entities.Decision{}, err
	}
	if d.LineItemID == "" {
		return entities.Decision{}, ErrDecisionNotFound
	}
	return d, nil
}

func (u *DecisionLedgerUseCase) ListDecisions(ctx context.Context, assessmentID string) ([]entities.Decision, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return nil, ErrInvalidAssessmentID
	}
	return u.repo.ListByAssessment(ctx, assessmentID)
}

func (u *DecisionLedgerUseCase) RecordDecision(ctx context.Context, in RecordDecisionInput) (entities.Decision, error) {
	in.AssessmentID = strings.TrimSpace(in.AssessmentID)
	in.LineItemID = strings.TrimSpace(in.LineItemID)
	in.Actor = strings.TrimSpace(in.Actor)
	log.Printf("[frc][usecase] record decision start assessment_id=%s line_item_id=%s status=%s actor=%q", in.AssessmentID, in.LineItemID, in.Status, in.Actor)
	if in.AssessmentID == "" {
		return entities.Decision{}, ErrInvalidAssessmentID
	}
	if in.LineItemID == "" {
		return entities.Decision{}, ErrInvalidLineItemID
	}
	if in.Actor == "" {
		return entities.Decision{}, ErrInvalidActor
	}
	if err := entities.ValidateDecisionPayload(in.Status, in.AdjustedValue); err != nil {
		log.Printf("[frc][usecase] invalid decision payload assessment_id=%s line_item_id=%s status=%s", in.AssessmentID, in.LineItemID, in.Status)
		return entities.Decision{}, ErrInvalidDecision
	}
	var adjusted *decimal.Decimal
	if in.AdjustedValue != nil {
		v := in.AdjustedValue.Round(entities.MoneyPlaces)
		adjusted = &v
	}

	rec, err := u.frcRepo.Get(ctx, in.AssessmentID)
	if err != nil {
		return entities.Decision{}, err
	}
	if rec.Completed() {
		log.Printf("[frc][usecase] decision refused, frc completed assessment_id=%s", in.AssessmentID)
		return entities.Decision{}, ErrLineItemNotEditable
	}

	snapshot, err := u.snapshots.GetSnapshot(ctx, in.AssessmentID)
	if err != nil {
		return entities.Decision{}, err
	}
	item, ok := snapshot.Find(in.LineItemID)
	if !ok {
		log.Printf("[frc][usecase] line item not in current snapshot assessment_id=%s line_item_id=%s", in.AssessmentID, in.LineItemID)
		return entities.Decision{}, ErrLineItemNotFound
	}
	if item.RemovedInSource {
		return entities.Decision{}, ErrLineItemNotEditable
	}

	current, err := u.loadOrSeed(ctx, item)
	if err != nil {
		return entities.Decision{}, err
	}
	if current.Status == entities.DecisionStatusDeclined {
		log.Printf("[frc][usecase] decision refused, line declined assessment_id=%s line_item_id=%s", in.AssessmentID, in.LineItemID)
		return entities.Decision{}, ErrLineItemNotEditable
	}
	if in.ExpectedVersion != nil && *in.ExpectedVersion != current.Version {
		log.Printf("[frc][usecase] stale version assessment_id=%s line_item_id=%s expected=%d current=%d", in.AssessmentID, in.LineItemID, *in.ExpectedVersion, current.Version)
		u.metrics.DecisionConflict()
		return entities.Decision{}, ErrConcurrentModification
	}

	now := time.Now().UTC()
	next := current
	next.Status = in.Status
	next.AdjustedValue = adjusted
	next.DecidedBy = in.Actor
	next.DecidedAt = now
	next.Stale = false
	next.UpdatedAt = now

	updated, err := u.repo.UpdateIfVersion(ctx, next, current.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Printf("[frc][usecase] version conflict assessment_id=%s line_item_id=%s version=%d", in.AssessmentID, in.LineItemID, current.Version)
			u.metrics.DecisionConflict()
			return entities.Decision{}, ErrConcurrentModification
		}
		log.Printf("[frc][usecase] decision persist failed assessment_id=%s line_item_id=%s err=%v", in.AssessmentID, in.LineItemID, err)
		return entities.Decision{}, err
	}
	u.metrics.DecisionRecorded(updated.Status)

	publishAudit(ctx, u.audit, u.metrics, entities.AuditEvent{
		ID:            uuid.NewString(),
		Type:          entities.AuditEventDecisionRecorded,
		AssessmentID:  updated.AssessmentID,
		LineItemID:    updated.LineItemID,
		OldStatus:     string(current.Status),
		NewStatus:     string(updated.Status),
		AdjustedValue: updated.AdjustedValue,
		Actor:         in.Actor,
		OccurredAt:    now,
	})
	log.Printf("[frc][usecase] record decision success assessment_id=%s line_item_id=%s status=%s version=%d", updated.AssessmentID, updated.LineItemID, updated.Status, updated.Version)
	return updated, nil
}

// loadOrSeed returns the ledger record of item, creating it first when the
// line was never reconciled.
func (u *DecisionLedgerUseCase) loadOrSeed(ctx context.Context, item entities.LineItem) (entities.Decision, error) {
	d, err := u.repo.Get(ctx, item.AssessmentID, item.ID)
	if err != nil {
		return entities.Decision{}, err
	}
	if d.LineItemID != "" {
		return d, nil
	}
	if _, err := u.repo.CreateIfAbsent(ctx, seedDecision(item, time.Now().UTC())); err != nil {
		return entities.Decision{}, err
	}
	d, err = u.repo.Get(ctx, item.AssessmentID, item.ID)
	if err != nil {
		return entities.Decision{}, err
	}
	if d.LineItemID == "" {
		return entities.Decision{}, ErrDecisionNotFound
	}
	return d, nil
}

func (u *DecisionLedgerUseCase) EnsureSeeded(ctx context.Context, assessmentID string, items []entities.LineItem) error {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return ErrInvalidAssessmentID
	}
	existing, err := u.repo.ListByAssessment(ctx, assessmentID)
	if err != nil {
		return err
	}
	return u.ensureSeeded(ctx, assessmentID, items, indexByLine(existing))
}

func (u *DecisionLedgerUseCase) ensureSeeded(ctx context.Context, assessmentID string, items []entities.LineItem, existing map[string]entities.Decision) error {
	now := time.Now().UTC()
	var revive []string
	var removed []entities.Decision
	created := 0
	for _, it := range items {
		d, ok := existing[it.ID]
		if ok {
			if d.Stale {
				revive = append(revive, it.ID)
			}
			if it.RemovedInSource && d.Status == entities.DecisionStatusPending {
				removed = append(removed, d)
			}
			continue
		}
		it.AssessmentID = assessmentID
		made, err := u.repo.CreateIfAbsent(ctx, seedDecision(it, now))
		if err != nil {
			log.Printf("[frc][usecase] seed failed assessment_id=%s line_item_id=%s err=%v", assessmentID, it.ID, err)
			return err
		}
		if made {
			created++
		}
	}
	if len(revive) > 0 {
		if err := u.repo.SetStale(ctx, assessmentID, revive, false); err != nil {
			return err
		}
	}
	approved := 0
	for _, d := range removed {
		ok, err := u.approveRemoved(ctx, d, now)
		if err != nil {
			return err
		}
		if ok {
			approved++
		}
	}
	if created > 0 || len(revive) > 0 || approved > 0 {
		log.Printf("[frc][usecase] ledger seeded assessment_id=%s created=%d revived=%d auto_approved=%d", assessmentID, created, len(revive), approved)
	}
	return nil
}

// approveRemoved settles a Pending record whose line was removed upstream
// after it was seeded, the same way seeding settles a line already removed.
// Losing the version race leaves the record to whoever wrote it.
func (u *DecisionLedgerUseCase) approveRemoved(ctx context.Context, d entities.Decision, now time.Time) (bool, error) {
	next := d
	next.Status = entities.DecisionStatusApproved
	next.AdjustedValue = nil
	next.DecidedBy = entities.SystemActorRemovedInSource
	next.DecidedAt = now
	next.UpdatedAt = now
	updated, err := u.repo.UpdateIfVersion(ctx, next, d.Version)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		log.Printf("[frc][usecase] auto-approve skipped, record moved assessment_id=%s line_item_id=%s", d.AssessmentID, d.LineItemID)
		return false, nil
	}
	if err != nil {
		log.Printf("[frc][usecase] auto-approve failed assessment_id=%s line_item_id=%s err=%v", d.AssessmentID, d.LineItemID, err)
		return false, err
	}
	publishAudit(ctx, u.audit, u.metrics, entities.AuditEvent{
		ID:           uuid.NewString(),
		Type:         entities.AuditEventDecisionRecorded,
		AssessmentID: updated.AssessmentID,
		LineItemID:   updated.LineItemID,
		OldStatus:    string(d.Status),
		NewStatus:    string(updated.Status),
		Actor:        entities.SystemActorRemovedInSource,
		OccurredAt:   now,
	})
	return true, nil
}

func (u *DecisionLedgerUseCase) MarkStale(ctx context.Context, assessmentID string, absentLineItemIDs []string) error {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return ErrInvalidAssessmentID
	}
	if len(absentLineItemIDs) == 0 {
		return nil
	}
	if err := u.repo.SetStale(ctx, assessmentID, absentLineItemIDs, true); err != nil {
		log.Printf("[frc][usecase] mark stale failed assessment_id=%s err=%v", assessmentID, err)
		return err
	}
	log.Printf("[frc][usecase] ledger marked stale assessment_id=%s count=%d", assessmentID, len(absentLineItemIDs))
	return nil
}

// Sync brings the ledger in line with snapshot and returns the resulting
// records. Seeding finishes before this returns.
func (u *DecisionLedgerUseCase) Sync(ctx context.Context, snapshot entities.LineItemSnapshot) ([]entities.Decision, error) {
	assessmentID := strings.TrimSpace(snapshot.AssessmentID)
	if assessmentID == "" {
		return nil, ErrInvalidAssessmentID
	}
	existing, err := u.repo.ListByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	byLine := indexByLine(existing)
	if err := u.ensureSeeded(ctx, assessmentID, snapshot.Items, byLine); err != nil {
		return nil, err
	}

	ids := snapshot.IDs()
	present := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		present[id] = struct{}{}
	}
	var absent []string
	for _, d := range existing {
		if _, ok := present[d.LineItemID]; !ok && !d.Stale {
			absent = append(absent, d.LineItemID)
		}
	}
	if err := u.MarkStale(ctx, assessmentID, absent); err != nil {
		return nil, err
	}
	return u.repo.ListByAssessment(ctx, assessmentID)
}

func seedDecision(it entities.LineItem, now time.Time) entities.Decision {
	d := entities.Decision{
		AssessmentID: it.AssessmentID,
		LineItemID:   it.ID,
		Status:       entities.DecisionStatusPending,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if it.RemovedInSource {
		d.Status = entities.DecisionStatusApproved
		d.DecidedBy = entities.SystemActorRemovedInSource
		d.DecidedAt = now
	}
	return d
}

func indexByLine(ds []entities.Decision) map[string]entities.Decision {
	out := make(map[string]entities.Decision, len(ds))
	for _, d := range ds {
		out[d.LineItemID] = d
	}
	return out
}
