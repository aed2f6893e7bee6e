package sqlite

import (
	"context"
	"database/sql"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
)

type InvoiceMatchRepository struct {
	db *sql.DB
}

var _ interfaces.IInvoiceMatchRepository = (*InvoiceMatchRepository)(nil)

func NewInvoiceMatchRepository(db *sql.DB) *InvoiceMatchRepository {
	return &InvoiceMatchRepository{db: db}
}

// Save upserts on (assessment_id, invoice_document_id), so re-attaching a
// document to another line moves it.
func (r *InvoiceMatchRepository) Save(ctx context.Context, m entities.InvoiceMatch) (entities.InvoiceMatch, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO invoice_matches(assessment_id, invoice_document_id, line_item_id, invoice_amount, match_confidence, attached_by, attached_at)
VALUES (?,?,?,?,?,?,?)
ON CONFLICT(assessment_id, invoice_document_id) DO UPDATE SET
  line_item_id=excluded.line_item_id,
  invoice_amount=excluded.invoice_amount,
  match_confidence=excluded.match_confidence,
  attached_by=excluded.attached_by,
  attached_at=excluded.attached_at`,
		m.AssessmentID, m.InvoiceDocumentID, m.LineItemID, m.InvoiceAmount.String(), string(m.MatchConfidence), m.AttachedBy, formatTime(m.AttachedAt))
	if err != nil {
		return entities.InvoiceMatch{}, err
	}
	return m, nil
}

func (r *InvoiceMatchRepository) ListByAssessment(ctx context.Context, assessmentID string) ([]entities.InvoiceMatch, error) {
	return r.list(ctx, `WHERE assessment_id=?`, assessmentID)
}

func (r *InvoiceMatchRepository) ListByLineItem(ctx context.Context, assessmentID, lineItemID string) ([]entities.InvoiceMatch, error) {
	return r.list(ctx, `WHERE assessment_id=? AND line_item_id=?`, assessmentID, lineItemID)
}

func (r *InvoiceMatchRepository) list(ctx context.Context, where string, args ...any) ([]entities.InvoiceMatch, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT assessment_id, invoice_document_id, line_item_id, invoice_amount, match_confidence, attached_by, attached_at
FROM invoice_matches `+where+` ORDER BY invoice_document_id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.InvoiceMatch
	for rows.Next() {
		var m entities.InvoiceMatch
		var amount, confidence, attachedAt string
		if err := rows.Scan(&m.AssessmentID, &m.InvoiceDocumentID, &m.LineItemID, &amount, &confidence, &m.AttachedBy, &attachedAt); err != nil {
			return nil, err
		}
		m.InvoiceAmount = parseDecimal(amount)
		m.MatchConfidence = entities.MatchConfidence(confidence)
		m.AttachedAt = parseTime(attachedAt)
		out = append(out, m)
	}
	return out, rows.Err()
}
