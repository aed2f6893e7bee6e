package usecase

import (
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/domain/reconciliation"
	"assessment_frc/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ILineItemSnapshotUseCase is the ingestion side of the line item store.
//
// The Estimate and Additionals services push the full current line list of an
// assessment; every push supersedes the previous snapshot as a whole.

type ILineItemSnapshotUseCase interface {
	PublishSnapshot(ctx context.Context, assessmentID string, items []entities.LineItem) (entities.LineItemSnapshot, error)
	GetSnapshot(ctx context.Context, assessmentID string) (entities.LineItemSnapshot, error)
}

type LineItemSnapshotUseCase struct {
	repo    interfaces.ILineItemRepository
	frcRepo interfaces.IFRCRecordRepository
}

var _ ILineItemSnapshotUseCase = (*LineItemSnapshotUseCase)(nil)

func NewLineItemSnapshotUseCase(repo interfaces.ILineItemRepository, frcRepo interfaces.IFRCRecordRepository) *LineItemSnapshotUseCase {
	return &LineItemSnapshotUseCase{repo: repo, frcRepo: frcRepo}
}

func (u *LineItemSnapshotUseCase) PublishSnapshot(ctx context.Context, assessmentID string, items []entities.LineItem) (entities.LineItemSnapshot, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.LineItemSnapshot{}, ErrInvalidAssessmentID
	}
	log.Printf("[frc][usecase] publish snapshot start assessment_id=%s items=%d", assessmentID, len(items))

	normalized := make([]entities.LineItem, 0, len(items))
	for i, it := range items {
		it.ID = strings.TrimSpace(it.ID)
		it.ParentLineItemID = strings.TrimSpace(it.ParentLineItemID)
		it.AssessmentID = assessmentID
		if it.Origin == entities.LineItemOriginOriginal && it.ParentLineItemID != "" {
			return entities.LineItemSnapshot{}, fmt.Errorf("%w: original line %q cannot replace another line", ErrInvalidSnapshot, it.ID)
		}
		if it.Position == 0 {
			it.Position = i + 1
		}
		normalized = append(normalized, it.WithComputedTotal())
	}
	if err := reconciliation.ValidateItems(assessmentID, normalized); err != nil {
		log.Printf("[frc][usecase] snapshot rejected assessment_id=%s err=%v", assessmentID, err)
		return entities.LineItemSnapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	rec, err := u.frcRepo.Get(ctx, assessmentID)
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	if rec.Completed() {
		log.Printf("[frc][usecase] snapshot refused, frc completed assessment_id=%s", assessmentID)
		return entities.LineItemSnapshot{}, ErrFRCAlreadyCompleted
	}

	s := entities.LineItemSnapshot{
		AssessmentID: assessmentID,
		SnapshotID:   uuid.NewString(),
		CapturedAt:   time.Now().UTC(),
		Items:        normalized,
	}
	saved, err := u.repo.ReplaceSnapshot(ctx, s)
	if err != nil {
		log.Printf("[frc][usecase] snapshot persist failed assessment_id=%s err=%v", assessmentID, err)
		return entities.LineItemSnapshot{}, err
	}
	log.Printf("[frc][usecase] publish snapshot success assessment_id=%s snapshot_id=%s", assessmentID, saved.SnapshotID)
	return saved, nil
}

func (u *LineItemSnapshotUseCase) GetSnapshot(ctx context.Context, assessmentID string) (entities.LineItemSnapshot, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.LineItemSnapshot{}, ErrInvalidAssessmentID
	}

	s, err := u.repo.GetSnapshot(ctx, assessmentID)
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	if s.SnapshotID == "" {
		return entities.LineItemSnapshot{}, ErrSnapshotNotFound
	}
	return s, nil
}
