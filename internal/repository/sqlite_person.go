package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/juliakramer/slipway/internal/db"
	"github.com/juliakramer/slipway/internal/domain"
)

// SQLitePersonRepo implements PersonRepo over SQLite. Vacation ranges are
// part of the person aggregate and are loaded with every read.
type SQLitePersonRepo struct {
	db db.DBTX
}

// NewSQLitePersonRepo creates a new SQLitePersonRepo.
func NewSQLitePersonRepo(dbtx db.DBTX) *SQLitePersonRepo {
	return &SQLitePersonRepo{db: dbtx}
}

func (r *SQLitePersonRepo) Create(ctx context.Context, p *domain.Person) error {
	query := `INSERT INTO people (id, name, role, fte, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Role),
		p.FTE,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `SELECT id, name, role, fte, created_at, updated_at FROM people WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPerson(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadVacations(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLitePersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	query := `SELECT id, name, role, fte, created_at, updated_at FROM people ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []*domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}

	for _, p := range people {
		if err := r.loadVacations(ctx, p); err != nil {
			return nil, err
		}
	}
	return people, nil
}

func (r *SQLitePersonRepo) Update(ctx context.Context, p *domain.Person) error {
	query := `UPDATE people SET name = ?, role = ?, fte = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		string(p.Role),
		p.FTE,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) AddVacation(ctx context.Context, v *domain.VacationRange) error {
	query := `INSERT INTO vacation_ranges (id, person_id, start_date, end_date) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.PersonID,
		v.Start.Format(dateLayout),
		v.End.Format(dateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting vacation range: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) RemoveVacation(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vacation_ranges WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting vacation range: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) loadVacations(ctx context.Context, p *domain.Person) error {
	query := `SELECT id, person_id, start_date, end_date FROM vacation_ranges
		WHERE person_id = ? ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, p.ID)
	if err != nil {
		return fmt.Errorf("listing vacation ranges: %w", err)
	}
	defer rows.Close()

	p.Vacations = nil
	for rows.Next() {
		var v domain.VacationRange
		var startStr, endStr string
		if err := rows.Scan(&v.ID, &v.PersonID, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning vacation range: %w", err)
		}
		if v.Start, err = time.Parse(dateLayout, startStr); err != nil {
			return fmt.Errorf("parsing vacation start_date: %w", err)
		}
		if v.End, err = time.Parse(dateLayout, endStr); err != nil {
			return fmt.Errorf("parsing vacation end_date: %w", err)
		}
		p.Vacations = append(p.Vacations, v)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating vacation ranges: %w", err)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var p domain.Person
	var roleStr, createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &roleStr, &p.FTE, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("person not found")
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}

	p.Role = domain.Role(roleStr)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
