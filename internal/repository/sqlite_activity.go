package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/db"
	"github.com/jmikkola/dayplan/internal/domain"
)

const activityColumns = `id, name, category, estimated_min, is_active, created_at, updated_at`

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(dbtx db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: dbtx}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.ProductiveActivity) error {
	query := `INSERT INTO activities (` + activityColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.Category,
		nullableIntToValue(a.EstimatedMin),
		boolToInt(a.IsActive),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.ProductiveActivity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	a, err := r.scanActivityRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity: %w", ErrNotFound)
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteActivityRepo) List(ctx context.Context, includeInactive bool) ([]*domain.ProductiveActivity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities ORDER BY created_at`
	if !includeInactive {
		query = `SELECT ` + activityColumns + ` FROM activities WHERE is_active = 1 ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.ProductiveActivity
	for rows.Next() {
		a, err := r.scanActivityRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.ProductiveActivity) error {
	query := `UPDATE activities SET name = ?, category = ?, estimated_min = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.Name,
		a.Category,
		nullableIntToValue(a.EstimatedMin),
		boolToInt(a.IsActive),
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) Deactivate(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `UPDATE activities SET is_active = 0, updated_at = ? WHERE id = ?`, now, id)
	if err != nil {
		return fmt.Errorf("deactivating activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) scanActivityRow(scan func(dest ...any) error) (*domain.ProductiveActivity, error) {
	var a domain.ProductiveActivity
	var estimatedMin sql.NullInt64
	var isActiveInt int
	var createdAtStr, updatedAtStr string

	if err := scan(&a.ID, &a.Name, &a.Category, &estimatedMin, &isActiveInt, &createdAtStr, &updatedAtStr); err != nil {
		return nil, err
	}

	a.EstimatedMin = nullableIntFromValue(estimatedMin)
	a.IsActive = intToBool(isActiveInt)

	var parseErr error
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &a, nil
}
