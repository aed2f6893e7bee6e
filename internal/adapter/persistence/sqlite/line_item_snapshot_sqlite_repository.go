package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
)

// LineItemSnapshotRepository replaces a snapshot inside one transaction so a
// reader never sees items of two snapshots.
type LineItemSnapshotRepository struct {
	db *sql.DB
}

var _ interfaces.ILineItemRepository = (*LineItemSnapshotRepository)(nil)

func NewLineItemSnapshotRepository(db *sql.DB) *LineItemSnapshotRepository {
	return &LineItemSnapshotRepository{db: db}
}

func (r *LineItemSnapshotRepository) ReplaceSnapshot(ctx context.Context, s entities.LineItemSnapshot) (entities.LineItemSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM line_items WHERE assessment_id=?`, s.AssessmentID); err != nil {
		return entities.LineItemSnapshot{}, err
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO line_item_snapshots(assessment_id, snapshot_id, captured_at) VALUES (?,?,?)
ON CONFLICT(assessment_id) DO UPDATE SET snapshot_id=excluded.snapshot_id, captured_at=excluded.captured_at`,
		s.AssessmentID, s.SnapshotID, formatTime(s.CapturedAt))
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO line_items(assessment_id, id, origin, category, description, unit_price, quantity, hours, line_total, removed_in_source, parent_line_item_id, position)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	defer stmt.Close()
	for _, it := range s.Items {
		_, err := stmt.ExecContext(ctx, s.AssessmentID, it.ID, string(it.Origin), string(it.Category), it.Description,
			it.UnitPrice.String(), it.Quantity.String(), it.Hours.String(), it.LineTotal.String(),
			boolInt(it.RemovedInSource), it.ParentLineItemID, it.Position)
		if err != nil {
			return entities.LineItemSnapshot{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.LineItemSnapshot{}, err
	}
	return s, nil
}

func (r *LineItemSnapshotRepository) GetSnapshot(ctx context.Context, assessmentID string) (entities.LineItemSnapshot, error) {
	var (
		s        entities.LineItemSnapshot
		captured string
	)
	err := r.db.QueryRowContext(ctx, `SELECT assessment_id, snapshot_id, captured_at FROM line_item_snapshots WHERE assessment_id=?`, assessmentID).
		Scan(&s.AssessmentID, &s.SnapshotID, &captured)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.LineItemSnapshot{}, nil
	}
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	s.CapturedAt = parseTime(captured)

	rows, err := r.db.QueryContext(ctx, `SELECT id, origin, category, description, unit_price, quantity, hours, line_total, removed_in_source, parent_line_item_id, position
FROM line_items WHERE assessment_id=? ORDER BY position ASC, id ASC`, assessmentID)
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	defer rows.Close()

	s.Items = []entities.LineItem{}
	for rows.Next() {
		var it entities.LineItem
		var origin, category, unitPrice, quantity, hours, total string
		var removed int
		if err := rows.Scan(&it.ID, &origin, &category, &it.Description, &unitPrice, &quantity, &hours, &total, &removed, &it.ParentLineItemID, &it.Position); err != nil {
			return entities.LineItemSnapshot{}, err
		}
		it.AssessmentID = assessmentID
		it.Origin = entities.LineItemOrigin(origin)
		it.Category = entities.LineItemCategory(category)
		it.UnitPrice = parseDecimal(unitPrice)
		it.Quantity = parseDecimal(quantity)
		it.Hours = parseDecimal(hours)
		it.LineTotal = parseDecimal(total)
		it.RemovedInSource = removed == 1
		s.Items = append(s.Items, it)
	}
	return s, rows.Err()
}
