package usecase

import (
	"errors"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/domain/reconciliation"
)

var (
	ErrInvalidAssessmentID     = errors.New("invalid assessment_id")
	ErrInvalidLineItemID       = errors.New("invalid line_item_id")
	ErrInvalidActor            = errors.New("invalid actor")
	ErrInvalidDecision         = entities.ErrInvalidDecision
	ErrInvalidSnapshot         = errors.New("invalid line item snapshot")
	ErrInvalidInvoice          = errors.New("invalid invoice")
	ErrSnapshotNotFound        = errors.New("line item snapshot not found")
	ErrDecisionNotFound        = errors.New("decision not found")
	ErrLineItemNotFound        = errors.New("line item not found")
	ErrLineItemNotEditable     = errors.New("line item not editable")
	ErrConcurrentModification  = errors.New("concurrent modification")
	ErrReconciliationInvariant = reconciliation.ErrInvariantViolation
	ErrFRCHasPendingLines      = errors.New("frc has pending lines")
	ErrFRCAlreadyCompleted     = errors.New("frc already completed")
	ErrFRCNotCompleted         = errors.New("frc not completed")
	ErrNothingToSettle         = errors.New("nothing to settle")
)
