package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/db"
	"github.com/jmikkola/dayplan/internal/domain"
)

const goalColumns = `id, title, description, is_automatic, has_timer, created_at, updated_at`

// SQLiteGoalLibraryRepo implements GoalLibraryRepo using a SQLite database.
type SQLiteGoalLibraryRepo struct {
	db db.DBTX
}

// NewSQLiteGoalLibraryRepo creates a new SQLiteGoalLibraryRepo.
func NewSQLiteGoalLibraryRepo(dbtx db.DBTX) *SQLiteGoalLibraryRepo {
	return &SQLiteGoalLibraryRepo{db: dbtx}
}

func (r *SQLiteGoalLibraryRepo) Create(ctx context.Context, g *domain.LibraryGoal) error {
	query := `INSERT INTO library_goals (` + goalColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.Title,
		g.Description,
		boolToInt(g.IsAutomatic),
		boolToInt(g.HasTimer),
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting library goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalLibraryRepo) GetByID(ctx context.Context, id string) (*domain.LibraryGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM library_goals WHERE id = ?`
	return r.scanGoal(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteGoalLibraryRepo) List(ctx context.Context) ([]*domain.LibraryGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM library_goals ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing library goals: %w", err)
	}
	defer rows.Close()
	return r.scanGoals(rows)
}

func (r *SQLiteGoalLibraryRepo) ListAutomatic(ctx context.Context) ([]*domain.LibraryGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM library_goals WHERE is_automatic = 1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing automatic goals: %w", err)
	}
	defer rows.Close()
	return r.scanGoals(rows)
}

func (r *SQLiteGoalLibraryRepo) Update(ctx context.Context, g *domain.LibraryGoal) error {
	query := `UPDATE library_goals SET title = ?, description = ?, is_automatic = ?, has_timer = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Description,
		boolToInt(g.IsAutomatic),
		boolToInt(g.HasTimer),
		g.UpdatedAt.Format(time.RFC3339),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating library goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalLibraryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM library_goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting library goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalLibraryRepo) scanGoal(row *sql.Row) (*domain.LibraryGoal, error) {
	var g domain.LibraryGoal
	var isAutomaticInt, hasTimerInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(&g.ID, &g.Title, &g.Description, &isAutomaticInt, &hasTimerInt, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("library goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning library goal: %w", err)
	}
	return r.populateGoal(&g, isAutomaticInt, hasTimerInt, createdAtStr, updatedAtStr)
}

func (r *SQLiteGoalLibraryRepo) scanGoals(rows *sql.Rows) ([]*domain.LibraryGoal, error) {
	var goals []*domain.LibraryGoal
	for rows.Next() {
		var g domain.LibraryGoal
		var isAutomaticInt, hasTimerInt int
		var createdAtStr, updatedAtStr string

		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &isAutomaticInt, &hasTimerInt, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning library goal row: %w", err)
		}
		goal, err := r.populateGoal(&g, isAutomaticInt, hasTimerInt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating library goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalLibraryRepo) populateGoal(g *domain.LibraryGoal, isAutomaticInt, hasTimerInt int, createdAtStr, updatedAtStr string) (*domain.LibraryGoal, error) {
	g.IsAutomatic = intToBool(isAutomaticInt)
	g.HasTimer = intToBool(hasTimerInt)

	var parseErr error
	g.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	g.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return g, nil
}
