package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/db"
	"github.com/jmikkola/dayplan/internal/domain"
)

const planItemColumns = `id, plan_date, kind, source_id, title, description, completed,
		scheduled_start, scheduled_end, has_timer, position, created_at, updated_at`

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

func (r *SQLitePlanRepo) CreatePlan(ctx context.Context, p *domain.DailyPlan) error {
	query := `INSERT INTO daily_plans (date, created_at, updated_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Date,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting daily plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetPlan(ctx context.Context, date string) (*domain.DailyPlan, error) {
	var p domain.DailyPlan
	var createdAtStr, updatedAtStr string

	row := r.db.QueryRowContext(ctx, `SELECT date, created_at, updated_at FROM daily_plans WHERE date = ?`, date)
	if err := row.Scan(&p.Date, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily plan: %w", err)
	}

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	items, err := r.listItems(ctx, date)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

func (r *SQLitePlanRepo) PlanExists(ctx context.Context, date string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_plans WHERE date = ?`, date).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking plan existence: %w", err)
	}
	return n > 0, nil
}

func (r *SQLitePlanRepo) ListPlanDates(ctx context.Context, from, to string) ([]string, error) {
	query := `SELECT date FROM daily_plans WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing plan dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning plan date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan dates: %w", err)
	}
	return dates, nil
}

func (r *SQLitePlanRepo) TouchPlan(ctx context.Context, date string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `UPDATE daily_plans SET updated_at = ? WHERE date = ?`, now, date)
	if err != nil {
		return fmt.Errorf("touching daily plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) AddItem(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO plan_items (` + planItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.PlanDate,
		string(it.Kind),
		nullableString(it.SourceID),
		it.Title,
		it.Description,
		boolToInt(it.Completed),
		scheduledStart(it),
		scheduledEnd(it),
		boolToInt(it.HasTimer),
		it.Position,
		it.CreatedAt.Format(time.RFC3339),
		it.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan item: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + planItemColumns + ` FROM plan_items WHERE id = ?`
	return r.scanItem(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePlanRepo) UpdateItem(ctx context.Context, it *domain.Item) error {
	query := `UPDATE plan_items SET title = ?, description = ?, completed = ?,
		scheduled_start = ?, scheduled_end = ?, has_timer = ?, position = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		it.Title,
		it.Description,
		boolToInt(it.Completed),
		scheduledStart(it),
		scheduledEnd(it),
		boolToInt(it.HasTimer),
		it.Position,
		it.UpdatedAt.Format(time.RFC3339),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan item: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) DeleteItem(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plan_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan item: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) listItems(ctx context.Context, date string) ([]*domain.Item, error) {
	query := `SELECT ` + planItemColumns + ` FROM plan_items WHERE plan_date = ? ORDER BY position, created_at`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing plan items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		it, err := r.scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan items: %w", err)
	}
	return items, nil
}

func (r *SQLitePlanRepo) scanItem(row *sql.Row) (*domain.Item, error) {
	var it domain.Item
	var kindStr string
	var sourceIDStr, startStr, endStr sql.NullString
	var completedInt, hasTimerInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&it.ID, &it.PlanDate, &kindStr, &sourceIDStr, &it.Title, &it.Description, &completedInt,
		&startStr, &endStr, &hasTimerInt, &it.Position, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("plan item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan item: %w", err)
	}
	return r.populateItem(&it, kindStr, sourceIDStr, startStr, endStr, completedInt, hasTimerInt, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanRepo) scanItemRow(rows *sql.Rows) (*domain.Item, error) {
	var it domain.Item
	var kindStr string
	var sourceIDStr, startStr, endStr sql.NullString
	var completedInt, hasTimerInt int
	var createdAtStr, updatedAtStr string

	err := rows.Scan(
		&it.ID, &it.PlanDate, &kindStr, &sourceIDStr, &it.Title, &it.Description, &completedInt,
		&startStr, &endStr, &hasTimerInt, &it.Position, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning plan item row: %w", err)
	}
	return r.populateItem(&it, kindStr, sourceIDStr, startStr, endStr, completedInt, hasTimerInt, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanRepo) populateItem(
	it *domain.Item,
	kindStr string,
	sourceIDStr, startStr, endStr sql.NullString,
	completedInt, hasTimerInt int,
	createdAtStr, updatedAtStr string,
) (*domain.Item, error) {
	it.Kind = domain.ItemKind(kindStr)
	if sourceIDStr.Valid {
		it.SourceID = sourceIDStr.String
	}
	it.Completed = intToBool(completedInt)
	it.HasTimer = intToBool(hasTimerInt)

	start := parseNullableTime(startStr, time.RFC3339)
	end := parseNullableTime(endStr, time.RFC3339)
	if start != nil && end != nil {
		it.Scheduled = &domain.TimeSpan{Start: *start, End: *end}
	}

	var parseErr error
	it.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	it.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return it, nil
}

// nullableString converts an empty string to SQL NULL. Source ids are NULL
// for ad-hoc goals so the per-day instance uniqueness index ignores them.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func scheduledStart(it *domain.Item) interface{} {
	if it.Scheduled == nil {
		return nil
	}
	return it.Scheduled.Start.Format(time.RFC3339)
}

func scheduledEnd(it *domain.Item) interface{} {
	if it.Scheduled == nil {
		return nil
	}
	return it.Scheduled.End.Format(time.RFC3339)
}
