package usecase

import (
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/domain/reconciliation"
	"assessment_frc/internal/usecase/interfaces"
	"context"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AttachInvoiceInput struct {
	AssessmentID      string
	LineItemID        string
	InvoiceDocumentID string
	InvoiceAmount     decimal.Decimal
	Actor             string
}

// IInvoiceAttachmentUseCase links invoice documents to FRC lines. Matches are
// informational only and never change the FRC totals.

type IInvoiceAttachmentUseCase interface {
	AttachInvoice(ctx context.Context, in AttachInvoiceInput) (entities.InvoiceMatch, error)
	ListInvoices(ctx context.Context, assessmentID, lineItemID string) ([]entities.InvoiceMatch, error)
	ComputeMatchConfidence(ctx context.Context, assessmentID, lineItemID string) (entities.LineMatch, error)
}

type InvoiceAttachmentUseCase struct {
	repo      interfaces.IInvoiceMatchRepository
	frc       IFRCUseCase
	tolerance reconciliation.MatchTolerance
}

var _ IInvoiceAttachmentUseCase = (*InvoiceAttachmentUseCase)(nil)

func NewInvoiceAttachmentUseCase(repo interfaces.IInvoiceMatchRepository, frc IFRCUseCase, tolerance reconciliation.MatchTolerance) *InvoiceAttachmentUseCase {
	return &InvoiceAttachmentUseCase{repo: repo, frc: frc, tolerance: tolerance}
}

func (u *InvoiceAttachmentUseCase) AttachInvoice(ctx context.Context, in AttachInvoiceInput) (entities.InvoiceMatch, error) {
	in.AssessmentID = strings.TrimSpace(in.AssessmentID)
	in.LineItemID = strings.TrimSpace(in.LineItemID)
	in.InvoiceDocumentID = strings.TrimSpace(in.InvoiceDocumentID)
	in.Actor = strings.TrimSpace(in.Actor)
	if in.AssessmentID == "" {
		return entities.InvoiceMatch{}, ErrInvalidAssessmentID
	}
	if in.LineItemID == "" {
		return entities.InvoiceMatch{}, ErrInvalidLineItemID
	}
	if in.InvoiceDocumentID == "" || in.InvoiceAmount.IsNegative() {
		return entities.InvoiceMatch{}, ErrInvalidInvoice
	}
	if in.Actor == "" {
		return entities.InvoiceMatch{}, ErrInvalidActor
	}
	log.Printf("[frc][usecase] attach invoice start assessment_id=%s line_item_id=%s invoice_document_id=%s", in.AssessmentID, in.LineItemID, in.InvoiceDocumentID)

	line, err := u.currentLine(ctx, in.AssessmentID, in.LineItemID)
	if err != nil {
		return entities.InvoiceMatch{}, err
	}
	if line.DisplayStatus.Locked() {
		log.Printf("[frc][usecase] attach refused, line locked assessment_id=%s line_item_id=%s status=%s", in.AssessmentID, in.LineItemID, line.DisplayStatus)
		return entities.InvoiceMatch{}, ErrLineItemNotEditable
	}

	existing, err := u.repo.ListByLineItem(ctx, in.AssessmentID, in.LineItemID)
	if err != nil {
		return entities.InvoiceMatch{}, err
	}
	amount := in.InvoiceAmount.Round(entities.MoneyPlaces)
	total := amount
	for _, m := range existing {
		if m.InvoiceDocumentID != in.InvoiceDocumentID {
			total = total.Add(m.InvoiceAmount)
		}
	}

	m := entities.InvoiceMatch{
		AssessmentID:      in.AssessmentID,
		LineItemID:        in.LineItemID,
		InvoiceDocumentID: in.InvoiceDocumentID,
		InvoiceAmount:     amount,
		MatchConfidence:   reconciliation.MatchConfidence(total, line.EffectiveAmount, u.tolerance),
		AttachedBy:        in.Actor,
		AttachedAt:        time.Now().UTC(),
	}
	saved, err := u.repo.Save(ctx, m)
	if err != nil {
		log.Printf("[frc][usecase] attach invoice persist failed assessment_id=%s invoice_document_id=%s err=%v", in.AssessmentID, in.InvoiceDocumentID, err)
		return entities.InvoiceMatch{}, err
	}
	log.Printf("[frc][usecase] attach invoice success assessment_id=%s line_item_id=%s confidence=%s", saved.AssessmentID, saved.LineItemID, saved.MatchConfidence)
	return saved, nil
}

func (u *InvoiceAttachmentUseCase) ListInvoices(ctx context.Context, assessmentID, lineItemID string) ([]entities.InvoiceMatch, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	lineItemID = strings.TrimSpace(lineItemID)
	if assessmentID == "" {
		return nil, ErrInvalidAssessmentID
	}
	if lineItemID == "" {
		return nil, ErrInvalidLineItemID
	}
	return u.repo.ListByLineItem(ctx, assessmentID, lineItemID)
}

// ComputeMatchConfidence grades the invoices of one line against its current
// effective amount.
func (u *InvoiceAttachmentUseCase) ComputeMatchConfidence(ctx context.Context, assessmentID, lineItemID string) (entities.LineMatch, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	lineItemID = strings.TrimSpace(lineItemID)
	if assessmentID == "" {
		return entities.LineMatch{}, ErrInvalidAssessmentID
	}
	if lineItemID == "" {
		return entities.LineMatch{}, ErrInvalidLineItemID
	}
	line, err := u.currentLine(ctx, assessmentID, lineItemID)
	if err != nil {
		return entities.LineMatch{}, err
	}
	return entities.LineMatch{
		LineItemID:      line.LineItemID,
		EffectiveAmount: line.EffectiveAmount,
		InvoiceTotal:    line.InvoiceTotal,
		InvoiceCount:    len(line.InvoiceDocumentIDs),
		MatchConfidence: line.MatchConfidence,
	}, nil
}

func (u *InvoiceAttachmentUseCase) currentLine(ctx context.Context, assessmentID, lineItemID string) (entities.FRCLineView, error) {
	res, err := u.frc.Reconcile(ctx, assessmentID)
	if err != nil {
		return entities.FRCLineView{}, err
	}
	line, ok := res.Line(lineItemID)
	if !ok {
		return entities.FRCLineView{}, ErrLineItemNotFound
	}
	return line, nil
}
