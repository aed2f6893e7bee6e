package usecase

import (
	"context"
	"errors"
	"testing"

	"assessment_frc/internal/domain/entities"
	mock_interfaces "assessment_frc/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestLineItemSnapshotUseCase_PublishSnapshot(t *testing.T) {
	t.Run("invalid assessment", func(t *testing.T) {
		uc := NewLineItemSnapshotUseCase(nil, nil)
		_, err := uc.PublishSnapshot(context.Background(), " ", nil)
		if !errors.Is(err, ErrInvalidAssessmentID) {
			t.Fatalf("expected ErrInvalidAssessmentID, got %v", err)
		}
	})

	t.Run("invalid items", func(t *testing.T) {
		dangling := testItem("l-2", 5)
		dangling.Origin = entities.LineItemOriginAdditional
		dangling.ParentLineItemID = "nope"
		originalReplacement := testItem("l-3", 5)
		originalReplacement.ParentLineItemID = "l-1"

		cases := []struct {
			name  string
			items []entities.LineItem
		}{
			{name: "duplicate ids", items: []entities.LineItem{testItem("l-1", 1), testItem(" l-1 ", 2)}},
			{name: "unknown category", items: []entities.LineItem{{ID: "l-1", Origin: entities.LineItemOriginOriginal, Category: "tyres"}}},
			{name: "dangling parent", items: []entities.LineItem{testItem("l-1", 1), dangling}},
			{name: "original replacing a line", items: []entities.LineItem{testItem("l-1", 1), originalReplacement}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewLineItemSnapshotUseCase(nil, nil)
				_, err := uc.PublishSnapshot(context.Background(), "a-1", tc.items)
				if !errors.Is(err, ErrInvalidSnapshot) {
					t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
				}
			})
		}
	})

	t.Run("frc completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		frcRepo := mock_interfaces.NewMockIFRCRecordRepository(ctrl)
		uc := NewLineItemSnapshotUseCase(repo, frcRepo)

		frcRepo.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCRecord{AssessmentID: "a-1", Status: entities.FRCStatusCompleted}, nil)

		_, err := uc.PublishSnapshot(context.Background(), "a-1", []entities.LineItem{testItem("l-1", 1)})
		if !errors.Is(err, ErrFRCAlreadyCompleted) {
			t.Fatalf("expected ErrFRCAlreadyCompleted, got %v", err)
		}
	})

	t.Run("success derives totals and ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		frcRepo := mock_interfaces.NewMockIFRCRecordRepository(ctrl)
		uc := NewLineItemSnapshotUseCase(repo, frcRepo)

		labour := entities.LineItem{
			ID:        "l-2",
			Origin:    entities.LineItemOriginOriginal,
			Category:  entities.LineItemCategoryLabour,
			UnitPrice: decimal.RequireFromString("380"),
			Hours:     decimal.RequireFromString("1.5"),
			LineTotal: decimal.RequireFromString("999"),
		}

		frcRepo.EXPECT().Get(gomock.Any(), "a-1").Return(entities.FRCRecord{}, nil)
		repo.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.LineItemSnapshot) (entities.LineItemSnapshot, error) {
				if s.SnapshotID == "" || s.CapturedAt.IsZero() || s.AssessmentID != "a-1" {
					t.Fatalf("unexpected snapshot: %+v", s)
				}
				if s.Items[1].LineTotal.String() != "570" || s.Items[1].AssessmentID != "a-1" || s.Items[1].Position != 2 {
					t.Fatalf("unexpected item: %+v", s.Items[1])
				}
				return s, nil
			},
		)

		res, err := uc.PublishSnapshot(context.Background(), "a-1", []entities.LineItem{testItem("l-1", 10), labour})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}

func TestLineItemSnapshotUseCase_GetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockILineItemRepository(ctrl)
	uc := NewLineItemSnapshotUseCase(repo, nil)

	repo.EXPECT().GetSnapshot(gomock.Any(), "a-1").Return(entities.LineItemSnapshot{}, nil)
	if _, err := uc.GetSnapshot(context.Background(), "a-1"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}
