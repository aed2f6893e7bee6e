package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
)

type SettlementPaymentRepository struct {
	db *sql.DB
}

var _ interfaces.ISettlementPaymentRepository = (*SettlementPaymentRepository)(nil)

func NewSettlementPaymentRepository(db *sql.DB) *SettlementPaymentRepository {
	return &SettlementPaymentRepository{db: db}
}

// Create refuses with ErrConditionFailed when the assessment already has an
// approved or pending settlement.
func (r *SettlementPaymentRepository) Create(ctx context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error) {
	var raw sql.NullString
	if len(p.ProviderPayloadRaw) > 0 {
		raw = sql.NullString{String: string(p.ProviderPayloadRaw), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO settlements(id, assessment_id, amount, date, status, provider_payload_raw) VALUES (?,?,?,?,?,?)`,
		p.ID, p.AssessmentID, p.Amount.String(), formatTime(p.Date), string(p.Status), raw)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.SettlementPayment{}, interfaces.ErrConditionFailed
		}
		return entities.SettlementPayment{}, err
	}
	return p, nil
}

// ListByAssessmentID returns settlements oldest first. The parsed provider
// payload is rebuilt from the stored raw body.
func (r *SettlementPaymentRepository) ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.SettlementPayment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, assessment_id, amount, date, status, provider_payload_raw
FROM settlements WHERE assessment_id=? ORDER BY date ASC, id ASC`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.SettlementPayment
	for rows.Next() {
		var p entities.SettlementPayment
		var amount, date, status string
		var raw sql.NullString
		if err := rows.Scan(&p.ID, &p.AssessmentID, &amount, &date, &status, &raw); err != nil {
			return nil, err
		}
		p.Amount = parseDecimal(amount)
		p.Date = parseTime(date)
		p.Status = entities.PaymentStatus(status)
		if raw.Valid {
			p.ProviderPayloadRaw = json.RawMessage(raw.String)
			var parsed map[string]interface{}
			if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err == nil {
				p.ProviderPayload = parsed
			}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
