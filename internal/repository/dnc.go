package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/telswitch/isdnc/internal/model"
)

// DNCRepository dispatches lookup queries to the DNC decision service. The
// decision logic lives entirely in stored procedures; this gateway forwards
// the bare 10-digit number and relays whatever rows come back, without
// knowing or enforcing their schema.
type DNCRepository struct {
	db *sql.DB
}

// NewDNCRepository creates a new DNCRepository.
func NewDNCRepository(db *sql.DB) *DNCRepository {
	return &DNCRepository{db: db}
}

// Check returns the registry status of a number as of the given date.
func (r *DNCRepository) Check(ctx context.Context, digits string, date time.Time) ([]model.Row, error) {
	rows, err := r.db.QueryContext(ctx, `CALL sp_CheckDNC(?, ?)`, digits, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

// History returns the full registration history of a number.
func (r *DNCRepository) History(ctx context.Context, digits string) ([]model.Row, error) {
	rows, err := r.db.QueryContext(ctx, `CALL sp_GetDNCHistory(?)`, digits)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

// collectRows scans a dynamic result set into Rows, preserving column order.
// Byte slices become strings; everything else the driver yields is already
// in the closed scalar set (int64, float64, bool, time.Time, nil).
func collectRows(rows *sql.Rows) ([]model.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []model.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := model.NewRow()
		for i, col := range cols {
			row.Set(col, normalizeValue(values[i]))
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
