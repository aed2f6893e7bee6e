package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
)

const decisionColumns = `assessment_id, line_item_id, status, adjusted_value, decided_by, decided_at, stale, version, created_at, updated_at`

// DecisionRepository is the SQLite decision ledger. The version column is the
// compare-and-swap token: updates carry `WHERE version = ?`.
type DecisionRepository struct {
	db *sql.DB
}

var _ interfaces.IDecisionRepository = (*DecisionRepository)(nil)

func NewDecisionRepository(db *sql.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDecision(row rowScanner) (entities.Decision, error) {
	var d entities.Decision
	var status, decidedAt, createdAt, updatedAt string
	var adjusted sql.NullString
	var stale int
	if err := row.Scan(&d.AssessmentID, &d.LineItemID, &status, &adjusted, &d.DecidedBy, &decidedAt, &stale, &d.Version, &createdAt, &updatedAt); err != nil {
		return entities.Decision{}, err
	}
	d.Status = entities.DecisionStatus(status)
	d.AdjustedValue = decimalPtr(adjusted)
	d.DecidedAt = parseTime(decidedAt)
	d.Stale = stale == 1
	d.CreatedAt = parseTime(createdAt)
	d.UpdatedAt = parseTime(updatedAt)
	return d, nil
}

func (r *DecisionRepository) Get(ctx context.Context, assessmentID, lineItemID string) (entities.Decision, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+decisionColumns+` FROM decisions WHERE assessment_id=? AND line_item_id=?`, assessmentID, lineItemID)
	d, err := scanDecision(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Decision{}, nil
	}
	return d, err
}

func (r *DecisionRepository) ListByAssessment(ctx context.Context, assessmentID string) ([]entities.Decision, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+decisionColumns+` FROM decisions WHERE assessment_id=? ORDER BY line_item_id ASC`, assessmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Decision
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DecisionRepository) CreateIfAbsent(ctx context.Context, d entities.Decision) (bool, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO decisions(`+decisionColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(assessment_id, line_item_id) DO NOTHING`,
		d.AssessmentID, d.LineItemID, string(d.Status), nullDecimal(d.AdjustedValue), d.DecidedBy, formatTime(d.DecidedAt),
		boolInt(d.Stale), d.Version, formatTime(d.CreatedAt), formatTime(d.UpdatedAt))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *DecisionRepository) UpdateIfVersion(ctx context.Context, d entities.Decision, expectedVersion int64) (entities.Decision, error) {
	d.Version = expectedVersion + 1
	d.Stale = false
	// stale=0 keeps a concurrent MarkStale from being undone.
	res, err := r.db.ExecContext(ctx, `UPDATE decisions
SET status=?, adjusted_value=?, decided_by=?, decided_at=?, version=?, updated_at=?
WHERE assessment_id=? AND line_item_id=? AND version=? AND stale=0`,
		string(d.Status), nullDecimal(d.AdjustedValue), d.DecidedBy, formatTime(d.DecidedAt), d.Version, formatTime(d.UpdatedAt),
		d.AssessmentID, d.LineItemID, expectedVersion)
	if err != nil {
		return entities.Decision{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Decision{}, err
	}
	if n == 0 {
		return entities.Decision{}, interfaces.ErrConditionFailed
	}
	return d, nil
}

func (r *DecisionRepository) SetStale(ctx context.Context, assessmentID string, lineItemIDs []string, stale bool) error {
	if len(lineItemIDs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, id := range lineItemIDs {
		if _, err := tx.ExecContext(ctx, `UPDATE decisions SET stale=? WHERE assessment_id=? AND line_item_id=?`, boolInt(stale), assessmentID, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}
