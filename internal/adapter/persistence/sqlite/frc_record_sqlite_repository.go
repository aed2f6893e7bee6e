package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
)

type FRCRecordRepository struct {
	db *sql.DB
}

var _ interfaces.IFRCRecordRepository = (*FRCRecordRepository)(nil)

func NewFRCRecordRepository(db *sql.DB) *FRCRecordRepository {
	return &FRCRecordRepository{db: db}
}

func (r *FRCRecordRepository) Get(ctx context.Context, assessmentID string) (entities.FRCRecord, error) {
	var rec entities.FRCRecord
	var status, baseline, newTotal, delta, completedAt string
	err := r.db.QueryRowContext(ctx, `SELECT assessment_id, status, snapshot_id, baseline_total, new_total, delta, completed_by, completed_at
FROM frc_records WHERE assessment_id=?`, assessmentID).
		Scan(&rec.AssessmentID, &status, &rec.SnapshotID, &baseline, &newTotal, &delta, &rec.CompletedBy, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.FRCRecord{}, nil
	}
	if err != nil {
		return entities.FRCRecord{}, err
	}
	rec.Status = entities.FRCStatus(status)
	rec.BaselineTotal = parseDecimal(baseline)
	rec.NewTotal = parseDecimal(newTotal)
	rec.Delta = parseDecimal(delta)
	rec.CompletedAt = parseTime(completedAt)
	return rec, nil
}

// Complete inserts the archive row; a second completion of the same
// assessment affects no row and loses.
func (r *FRCRecordRepository) Complete(ctx context.Context, rec entities.FRCRecord) (entities.FRCRecord, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO frc_records(assessment_id, status, snapshot_id, baseline_total, new_total, delta, completed_by, completed_at)
VALUES (?,?,?,?,?,?,?,?) ON CONFLICT(assessment_id) DO NOTHING`,
		rec.AssessmentID, string(rec.Status), rec.SnapshotID, rec.BaselineTotal.String(), rec.NewTotal.String(), rec.Delta.String(),
		rec.CompletedBy, formatTime(rec.CompletedAt))
	if err != nil {
		return entities.FRCRecord{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if n == 0 {
		return entities.FRCRecord{}, interfaces.ErrConditionFailed
	}
	return rec, nil
}
