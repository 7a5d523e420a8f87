package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/juliakramer/slipway/internal/db"
	"github.com/juliakramer/slipway/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over SQLite. A project row fans
// out into role_efforts, role_dependencies, and role_statuses; writes that
// touch the satellite tables should run inside a unit of work so a project
// is never half-replaced.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, priority, status, explicit_start, requested_delivery, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Priority,
		string(p.Status),
		nullableTimeToString(p.ExplicitStart, dateLayout),
		nullableTimeToString(p.RequestedDelivery, dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return r.insertSatellites(ctx, p)
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT id, name, priority, status, explicit_start, requested_delivery, created_at, updated_at
		FROM projects WHERE id = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadSatellites(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	query := `SELECT id, name, priority, status, explicit_start, requested_delivery, created_at, updated_at
		FROM projects WHERE name = ?`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, err
	}
	if err := r.loadSatellites(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Project, error) {
	query := `SELECT id, name, priority, status, explicit_start, requested_delivery, created_at, updated_at
		FROM projects ORDER BY priority, created_at`
	if !includeInactive {
		query = `SELECT id, name, priority, status, explicit_start, requested_delivery, created_at, updated_at
			FROM projects WHERE status IN ('not_started','in_progress','paused') ORDER BY priority, created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if err := r.loadSatellites(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, priority = ?, status = ?, explicit_start = ?, requested_delivery = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Priority,
		string(p.Status),
		nullableTimeToString(p.ExplicitStart, dateLayout),
		nullableTimeToString(p.RequestedDelivery, dateLayout),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	for _, table := range []string{"role_efforts", "role_dependencies", "role_statuses"} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE project_id = ?`, p.ID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return r.insertSatellites(ctx, p)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) insertSatellites(ctx context.Context, p *domain.Project) error {
	for role, effort := range p.Efforts {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO role_efforts (project_id, role, total_effort_days, percent_done) VALUES (?, ?, ?, ?)`,
			p.ID, string(role), effort.TotalEffortDays, effort.PercentDone)
		if err != nil {
			return fmt.Errorf("inserting role effort: %w", err)
		}
	}
	if p.Graph == nil {
		return nil
	}
	for _, e := range p.Graph.Edges {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO role_dependencies (project_id, from_role, to_role, kind) VALUES (?, ?, ?, ?)`,
			p.ID, string(e.From), string(e.To), string(e.Kind))
		if err != nil {
			return fmt.Errorf("inserting role dependency: %w", err)
		}
	}
	for role, status := range p.Graph.Statuses {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO role_statuses (project_id, role, status) VALUES (?, ?, ?)`,
			p.ID, string(role), string(status))
		if err != nil {
			return fmt.Errorf("inserting role status: %w", err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) loadSatellites(ctx context.Context, p *domain.Project) error {
	p.Efforts = make(map[domain.Role]domain.RoleEffort)

	rows, err := r.db.QueryContext(ctx,
		`SELECT role, total_effort_days, percent_done FROM role_efforts WHERE project_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("listing role efforts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		var effort domain.RoleEffort
		if err := rows.Scan(&role, &effort.TotalEffortDays, &effort.PercentDone); err != nil {
			return fmt.Errorf("scanning role effort: %w", err)
		}
		p.Efforts[domain.Role(role)] = effort
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating role efforts: %w", err)
	}

	var edges []domain.DependencyEdge
	depRows, err := r.db.QueryContext(ctx,
		`SELECT from_role, to_role, kind FROM role_dependencies WHERE project_id = ? ORDER BY from_role, to_role`, p.ID)
	if err != nil {
		return fmt.Errorf("listing role dependencies: %w", err)
	}
	defer depRows.Close()
	for depRows.Next() {
		var from, to, kind string
		if err := depRows.Scan(&from, &to, &kind); err != nil {
			return fmt.Errorf("scanning role dependency: %w", err)
		}
		edges = append(edges, domain.DependencyEdge{
			From: domain.Role(from),
			To:   domain.Role(to),
			Kind: domain.DependencyKind(kind),
		})
	}
	if err := depRows.Err(); err != nil {
		return fmt.Errorf("iterating role dependencies: %w", err)
	}

	statuses := make(map[domain.Role]domain.WorkerStatus)
	statusRows, err := r.db.QueryContext(ctx,
		`SELECT role, status FROM role_statuses WHERE project_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("listing role statuses: %w", err)
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var role, status string
		if err := statusRows.Scan(&role, &status); err != nil {
			return fmt.Errorf("scanning role status: %w", err)
		}
		statuses[domain.Role(role)] = domain.WorkerStatus(status)
	}
	if err := statusRows.Err(); err != nil {
		return fmt.Errorf("iterating role statuses: %w", err)
	}

	if len(edges) > 0 || len(statuses) > 0 {
		p.Graph = &domain.RoleGraph{Edges: edges, Statuses: statuses}
	} else {
		p.Graph = nil
	}
	return nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var statusStr, createdAtStr, updatedAtStr string
	var explicitStart, requestedDelivery sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.Priority, &statusStr,
		&explicitStart, &requestedDelivery,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(statusStr)
	p.ExplicitStart = parseNullableTime(explicitStart, dateLayout)
	p.RequestedDelivery = parseNullableTime(requestedDelivery, dateLayout)

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
