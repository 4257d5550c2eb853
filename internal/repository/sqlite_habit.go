package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/db"
	"github.com/jmikkola/dayplan/internal/domain"
)

const habitColumns = `id, title, category, color, is_active, target_count, unit, created_at, updated_at`

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(dbtx db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: dbtx}
}

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (` + habitColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Title,
		h.Category,
		h.Color,
		boolToInt(h.IsActive),
		nullableIntToValue(h.TargetCount),
		h.Unit,
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = ?`
	return r.scanHabit(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteHabitRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits ORDER BY created_at`
	if !includeInactive {
		query = `SELECT ` + habitColumns + ` FROM habits WHERE is_active = 1 ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()
	return r.scanHabits(rows)
}

func (r *SQLiteHabitRepo) ListActive(ctx context.Context) ([]*domain.Habit, error) {
	return r.List(ctx, false)
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET title = ?, category = ?, color = ?, is_active = ?,
		target_count = ?, unit = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		h.Title,
		h.Category,
		h.Color,
		boolToInt(h.IsActive),
		nullableIntToValue(h.TargetCount),
		h.Unit,
		h.UpdatedAt.Format(time.RFC3339),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) scanHabit(row *sql.Row) (*domain.Habit, error) {
	var h domain.Habit
	var isActiveInt int
	var targetCount sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(&h.ID, &h.Title, &h.Category, &h.Color, &isActiveInt, &targetCount, &h.Unit, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}
	return r.populateHabit(&h, isActiveInt, targetCount, createdAtStr, updatedAtStr)
}

func (r *SQLiteHabitRepo) scanHabits(rows *sql.Rows) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	for rows.Next() {
		var h domain.Habit
		var isActiveInt int
		var targetCount sql.NullInt64
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(&h.ID, &h.Title, &h.Category, &h.Color, &isActiveInt, &targetCount, &h.Unit, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning habit row: %w", err)
		}
		habit, err := r.populateHabit(&h, isActiveInt, targetCount, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	return habits, nil
}

func (r *SQLiteHabitRepo) populateHabit(h *domain.Habit, isActiveInt int, targetCount sql.NullInt64, createdAtStr, updatedAtStr string) (*domain.Habit, error) {
	h.IsActive = intToBool(isActiveInt)
	h.TargetCount = nullableIntFromValue(targetCount)

	var parseErr error
	h.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	h.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return h, nil
}

// SQLiteHabitEntryRepo implements HabitEntryRepo using a SQLite database.
type SQLiteHabitEntryRepo struct {
	db db.DBTX
}

// NewSQLiteHabitEntryRepo creates a new SQLiteHabitEntryRepo.
func NewSQLiteHabitEntryRepo(dbtx db.DBTX) *SQLiteHabitEntryRepo {
	return &SQLiteHabitEntryRepo{db: dbtx}
}

func (r *SQLiteHabitEntryRepo) Upsert(ctx context.Context, e *domain.HabitEntry) error {
	query := `INSERT INTO habit_entries (habit_id, entry_date, completed, count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, entry_date)
		DO UPDATE SET completed = excluded.completed, count = excluded.count, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.HabitID,
		e.Date,
		boolToInt(e.Completed),
		nullableIntToValue(e.Count),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting habit entry: %w", err)
	}
	return nil
}

func (r *SQLiteHabitEntryRepo) Get(ctx context.Context, habitID, date string) (*domain.HabitEntry, error) {
	query := `SELECT habit_id, entry_date, completed, count, created_at, updated_at
		FROM habit_entries WHERE habit_id = ? AND entry_date = ?`
	row := r.db.QueryRowContext(ctx, query, habitID, date)

	var e domain.HabitEntry
	var completedInt int
	var count sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(&e.HabitID, &e.Date, &completedInt, &count, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit entry: %w", err)
	}
	return r.populateEntry(&e, completedInt, count, createdAtStr, updatedAtStr)
}

func (r *SQLiteHabitEntryRepo) ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitEntry, error) {
	query := `SELECT habit_id, entry_date, completed, count, created_at, updated_at
		FROM habit_entries WHERE habit_id = ? ORDER BY entry_date`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing habit entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteHabitEntryRepo) ListByDate(ctx context.Context, date string) ([]*domain.HabitEntry, error) {
	query := `SELECT habit_id, entry_date, completed, count, created_at, updated_at
		FROM habit_entries WHERE entry_date = ? ORDER BY habit_id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing habit entries by date: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteHabitEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.HabitEntry, error) {
	var entries []*domain.HabitEntry
	for rows.Next() {
		var e domain.HabitEntry
		var completedInt int
		var count sql.NullInt64
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(&e.HabitID, &e.Date, &completedInt, &count, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning habit entry row: %w", err)
		}
		entry, err := r.populateEntry(&e, completedInt, count, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habit entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteHabitEntryRepo) populateEntry(e *domain.HabitEntry, completedInt int, count sql.NullInt64, createdAtStr, updatedAtStr string) (*domain.HabitEntry, error) {
	e.Completed = intToBool(completedInt)
	e.Count = nullableIntFromValue(count)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return e, nil
}
