package usecase

import (
	"context"
	"errors"
	"testing"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/domain/reconciliation"
	"assessment_frc/internal/usecase/interfaces"
	mock_interfaces "assessment_frc/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type frcDeps struct {
	ledgerDeps
	invoices *mock_interfaces.MockIInvoiceMatchRepository
}

func newFRC(t *testing.T) (*FRCUseCase, frcDeps) {
	t.Helper()
	ledger, ld := newLedger(t)
	ctrl := gomock.NewController(t)
	deps := frcDeps{ledgerDeps: ld, invoices: mock_interfaces.NewMockIInvoiceMatchRepository(ctrl)}
	deps.metrics.EXPECT().ObserveReconciliation(gomock.Any(), gomock.Any()).AnyTimes()
	uc := NewFRCUseCase(ld.snapshots, ledger, deps.invoices, ld.frcRepo, ld.audit, ld.metrics, reconciliation.DefaultMatchTolerance())
	return uc, deps
}

// expectRun wires one reconciliation pass over an already seeded ledger.
func (d frcDeps) expectRun(snapshot entities.LineItemSnapshot, rec entities.FRCRecord, decisions []entities.Decision) {
	d.snapshots.EXPECT().GetSnapshot(gomock.Any(), snapshot.AssessmentID).Return(snapshot, nil)
	d.frcRepo.EXPECT().Get(gomock.Any(), snapshot.AssessmentID).Return(rec, nil)
	d.repo.EXPECT().ListByAssessment(gomock.Any(), snapshot.AssessmentID).Return(decisions, nil).Times(2)
	d.invoices.EXPECT().ListByAssessment(gomock.Any(), snapshot.AssessmentID).Return(nil, nil)
}

func decisionFor(lineID string, status entities.DecisionStatus) entities.Decision {
	return entities.Decision{AssessmentID: "a-1", LineItemID: lineID, Status: status, Version: 1}
}

func TestFRCUseCase_Reconcile(t *testing.T) {
	t.Run("invalid assessment", func(t *testing.T) {
		uc := NewFRCUseCase(nil, nil, nil, nil, nil, nil, reconciliation.DefaultMatchTolerance())
		_, err := uc.Reconcile(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("snapshot not found", func(t *testing.T) {
		uc, deps := newFRC(t)
		deps.snapshots.EXPECT().GetSnapshot(gomock.Any(), "a-1").Return(entities.LineItemSnapshot{}, nil)

		_, err := uc.Reconcile(context.Background(), "a-1")
		if !errors.Is(err, ErrSnapshotNotFound) {
			t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("pending original", func(t *testing.T) {
		uc, deps := newFRC(t)
		deps.expectRun(testSnapshot(testItem("l-1", 1000)), entities.FRCRecord{}, []entities.Decision{decisionFor("l-1", entities.DecisionStatusPending)})

		res, err := uc.Reconcile(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Totals.BaselineTotal.String() != "1000" || res.Totals.NewTotal.String() != "0" || res.Totals.Delta.String() != "-1000" {
			t.Fatalf("unexpected totals: %+v", res.Totals)
		}
		if res.ComputedAt.IsZero() || res.SnapshotID != "s-1" {
			t.Fatalf("expected computed_at and snapshot id: %+v", res)
		}
	})

	t.Run("completed frc renders every line read-only", func(t *testing.T) {
		uc, deps := newFRC(t)
		deps.expectRun(testSnapshot(testItem("l-1", 1000)), entities.FRCRecord{AssessmentID: "a-1", Status: entities.FRCStatusCompleted}, []entities.Decision{decisionFor("l-1", entities.DecisionStatusApproved)})

		res, err := uc.Reconcile(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Frozen || res.Lines[0].Editable {
			t.Fatalf("expected frozen read-only FRC: %+v", res)
		}
	})

	t.Run("invariant violation aborts", func(t *testing.T) {
		uc, deps := newFRC(t)
		dup := decisionFor("l-1", entities.DecisionStatusPending)
		deps.expectRun(testSnapshot(testItem("l-1", 1000)), entities.FRCRecord{}, []entities.Decision{dup, dup})

		res, err := uc.Reconcile(context.Background(), "a-1")
		if !errors.Is(err, ErrReconciliationInvariant) {
			t.Fatalf("expected ErrReconciliationInvariant, got %v", err)
		}
		if len(res.Lines) != 0 {
			t.Fatalf("expected no partial result")
		}
	})
}

func TestFRCUseCase_CompleteFRC(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := NewFRCUseCase(nil, nil, nil, nil, nil, nil, reconciliation.DefaultMatchTolerance())
		_, err := uc.CompleteFRC(context.Background(), "a-1", "")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		uc, deps := newFRC(t)
		deps.frcRepo.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCRecord{AssessmentID: "a-1", Status: entities.FRCStatusCompleted}, nil)

		_, err := uc.CompleteFRC(context.Background(), "a-1", "lead-1")
		if !errors.Is(err, ErrFRCAlreadyCompleted) {
			t.Fatalf("expected ErrFRCAlreadyCompleted, got %v", err)
		}
	})

	t.Run("pending lines", func(t *testing.T) {
		uc, deps := newFRC(t)
		deps.frcRepo.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCRecord{}, nil)
		deps.expectRun(testSnapshot(testItem("l-1", 1000), testItem("l-2", 5)), entities.FRCRecord{}, []entities.Decision{
			decisionFor("l-1", entities.DecisionStatusApproved),
			decisionFor("l-2", entities.DecisionStatusPending),
		})

		_, err := uc.CompleteFRC(context.Background(), "a-1", "lead-1")
		if !errors.Is(err, ErrFRCHasPendingLines) {
			t.Fatalf("expected ErrFRCHasPendingLines, got %v", err)
		}
	})

	t.Run("lost completion race", func(t *testing.T) {
		uc, deps := newFRC(t)
		deps.frcRepo.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCRecord{}, nil)
		deps.expectRun(testSnapshot(testItem("l-1", 1000)), entities.FRCRecord{}, []entities.Decision{decisionFor("l-1", entities.DecisionStatusApproved)})
		deps.frcRepo.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(entities.FRCRecord{}, interfaces.ErrConditionFailed)

		_, err := uc.CompleteFRC(context.Background(), "a-1", "lead-1")
		if !errors.Is(err, ErrFRCAlreadyCompleted) {
			t.Fatalf("expected ErrFRCAlreadyCompleted, got %v", err)
		}
	})

	t.Run("success archives totals", func(t *testing.T) {
		uc, deps := newFRC(t)
		extra := testItem("l-2", 200)
		extra.Origin = entities.LineItemOriginAdditional
		deps.frcRepo.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCRecord{}, nil)
		deps.expectRun(testSnapshot(testItem("l-1", 1000), extra), entities.FRCRecord{}, []entities.Decision{
			decisionFor("l-1", entities.DecisionStatusApproved),
			decisionFor("l-2", entities.DecisionStatusApproved),
		})
		deps.frcRepo.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FRCRecord) (entities.FRCRecord, error) {
				if r.Status != entities.FRCStatusCompleted || r.CompletedBy != "lead-1" || r.CompletedAt.IsZero() {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.BaselineTotal.String() != "1000" || r.NewTotal.String() != "1200" || r.Delta.String() != "200" {
					t.Fatalf("unexpected totals: %+v", r)
				}
				return r, nil
			},
		)
		deps.audit.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.AuditEvent) error {
				if e.Type != entities.AuditEventFRCCompleted || e.Actor != "lead-1" {
					t.Fatalf("unexpected audit event: %+v", e)
				}
				return nil
			},
		)

		rec, err := uc.CompleteFRC(context.Background(), "a-1", "lead-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.Completed() {
			t.Fatalf("expected completed record")
		}
	})
}

func TestFRCUseCase_GetFRCRecord(t *testing.T) {
	t.Run("open when never completed", func(t *testing.T) {
		uc, deps := newFRC(t)
		deps.frcRepo.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCRecord{}, nil)

		rec, err := uc.GetFRCRecord(context.Background(), "a-1")
		if err != nil || rec.Status != entities.FRCStatusOpen || rec.AssessmentID != "a-1" {
			t.Fatalf("unexpected result err=%v rec=%+v", err, rec)
		}
	})
}
