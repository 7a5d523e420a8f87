package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/juliakramer/slipway/internal/db"
	"github.com/juliakramer/slipway/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo over SQLite.
type SQLiteAssignmentRepo struct {
	db db.DBTX
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(dbtx db.DBTX) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: dbtx}
}

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (id, person_id, project_id, role, allocation_fte, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.PersonID,
		a.ProjectID,
		string(a.Role),
		a.AllocationFTE,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Assignment, error) {
	query := `SELECT id, person_id, project_id, role, allocation_fte, created_at
		FROM assignments WHERE project_id = ? ORDER BY role, created_at`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteAssignmentRepo) ListAll(ctx context.Context) ([]*domain.Assignment, error) {
	query := `SELECT id, person_id, project_id, role, allocation_fte, created_at
		FROM assignments ORDER BY project_id, role, created_at`
	return r.list(ctx, query)
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var roleStr, createdAtStr string
		if err := rows.Scan(&a.ID, &a.PersonID, &a.ProjectID, &roleStr, &a.AllocationFTE, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.Role = domain.Role(roleStr)
		if a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}
