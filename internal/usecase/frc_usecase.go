package usecase

import (
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/domain/reconciliation"
	"assessment_frc/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IFRCUseCase runs reconciliation and closes the FRC.
//
//   - GET /v1/assessments/{id}/frc => Reconcile()
//   - POST /v1/assessments/{id}/frc/complete => CompleteFRC()

type IFRCUseCase interface {
	Reconcile(ctx context.Context, assessmentID string) (entities.FRCResult, error)
	CompleteFRC(ctx context.Context, assessmentID, actor string) (entities.FRCRecord, error)
	GetFRCRecord(ctx context.Context, assessmentID string) (entities.FRCRecord, error)
}

type FRCUseCase struct {
	snapshots interfaces.ILineItemRepository
	ledger    IDecisionLedgerUseCase
	invoices  interfaces.IInvoiceMatchRepository
	frcRepo   interfaces.IFRCRecordRepository
	audit     interfaces.IAuditSink
	metrics   interfaces.IFRCMetrics
	tolerance reconciliation.MatchTolerance
}

var _ IFRCUseCase = (*FRCUseCase)(nil)

func NewFRCUseCase(snapshots interfaces.ILineItemRepository, ledger IDecisionLedgerUseCase, invoices interfaces.IInvoiceMatchRepository, frcRepo interfaces.IFRCRecordRepository, audit interfaces.IAuditSink, metrics interfaces.IFRCMetrics, tolerance reconciliation.MatchTolerance) *FRCUseCase {
	return &FRCUseCase{
		snapshots: snapshots,
		ledger:    ledger,
		invoices:  invoices,
		frcRepo:   frcRepo,
		audit:     audit,
		metrics:   metricsOrNoop(metrics),
		tolerance: tolerance,
	}
}

func (u *FRCUseCase) Reconcile(ctx context.Context, assessmentID string) (res entities.FRCResult, err error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.FRCResult{}, ErrInvalidAssessmentID
	}
	started := time.Now()
	defer func() { u.metrics.ObserveReconciliation(time.Since(started), err) }()

	snapshot, err := u.snapshots.GetSnapshot(ctx, assessmentID)
	if err != nil {
		return entities.FRCResult{}, err
	}
	if snapshot.SnapshotID == "" {
		return entities.FRCResult{}, ErrSnapshotNotFound
	}
	rec, err := u.frcRepo.Get(ctx, assessmentID)
	if err != nil {
		return entities.FRCResult{}, err
	}

	decisions, err := u.ledger.Sync(ctx, snapshot)
	if err != nil {
		log.Printf("[frc][usecase] ledger sync failed assessment_id=%s err=%v", assessmentID, err)
		return entities.FRCResult{}, err
	}
	invoices, err := u.invoices.ListByAssessment(ctx, assessmentID)
	if err != nil {
		return entities.FRCResult{}, err
	}

	res, err = reconciliation.Reconcile(reconciliation.Input{
		AssessmentID: assessmentID,
		SnapshotID:   snapshot.SnapshotID,
		Items:        snapshot.Items,
		Decisions:    decisions,
		Invoices:     invoices,
		Frozen:       rec.Completed(),
		Tolerance:    u.tolerance,
	})
	if err != nil {
		log.Printf("[frc][usecase] reconciliation aborted assessment_id=%s snapshot_id=%s err=%v", assessmentID, snapshot.SnapshotID, err)
		return entities.FRCResult{}, err
	}
	res.ComputedAt = time.Now().UTC()
	log.Printf("[frc][usecase] reconciled assessment_id=%s lines=%d baseline=%s new=%s delta=%s pending=%d", assessmentID, len(res.Lines), res.Totals.BaselineTotal, res.Totals.NewTotal, res.Totals.Delta, res.Totals.PendingCount())
	return res, nil
}

func (u *FRCUseCase) CompleteFRC(ctx context.Context, assessmentID, actor string) (entities.FRCRecord, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	actor = strings.TrimSpace(actor)
	if assessmentID == "" {
		return entities.FRCRecord{}, ErrInvalidAssessmentID
	}
	if actor == "" {
		return entities.FRCRecord{}, ErrInvalidActor
	}
	log.Printf("[frc][usecase] complete frc start assessment_id=%s actor=%q", assessmentID, actor)

	existing, err := u.frcRepo.Get(ctx, assessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if existing.Completed() {
		return entities.FRCRecord{}, ErrFRCAlreadyCompleted
	}

	res, err := u.Reconcile(ctx, assessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if pending := res.Totals.PendingCount(); pending > 0 {
		log.Printf("[frc][usecase] complete refused assessment_id=%s pending=%d", assessmentID, pending)
		return entities.FRCRecord{}, ErrFRCHasPendingLines
	}

	now := time.Now().UTC()
	rec := entities.FRCRecord{
		AssessmentID:  assessmentID,
		Status:        entities.FRCStatusCompleted,
		SnapshotID:    res.SnapshotID,
		BaselineTotal: res.Totals.BaselineTotal,
		NewTotal:      res.Totals.NewTotal,
		Delta:         res.Totals.Delta,
		CompletedBy:   actor,
		CompletedAt:   now,
	}
	saved, err := u.frcRepo.Complete(ctx, rec)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.FRCRecord{}, ErrFRCAlreadyCompleted
		}
		log.Printf("[frc][usecase] complete persist failed assessment_id=%s err=%v", assessmentID, err)
		return entities.FRCRecord{}, err
	}

	publishAudit(ctx, u.audit, u.metrics, entities.AuditEvent{
		ID:           uuid.NewString(),
		Type:         entities.AuditEventFRCCompleted,
		AssessmentID: assessmentID,
		OldStatus:    string(entities.FRCStatusOpen),
		NewStatus:    string(entities.FRCStatusCompleted),
		Actor:        actor,
		OccurredAt:   now,
	})
	log.Printf("[frc][usecase] complete frc success assessment_id=%s new_total=%s delta=%s", assessmentID, saved.NewTotal, saved.Delta)
	return saved, nil
}

// GetFRCRecord returns the archived totals, or an open record when the FRC
// was never completed.
func (u *FRCUseCase) GetFRCRecord(ctx context.Context, assessmentID string) (entities.FRCRecord, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.FRCRecord{}, ErrInvalidAssessmentID
	}
	rec, err := u.frcRepo.Get(ctx, assessmentID)
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if rec.AssessmentID == "" {
		return entities.FRCRecord{AssessmentID: assessmentID, Status: entities.FRCStatusOpen}, nil
	}
	return rec, nil
}
