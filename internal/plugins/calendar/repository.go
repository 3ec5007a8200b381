package calendar

import (
	"context"
	"database/sql"
	"fmt"
)

// PriorityRepository defines persistence operations for event priorities.
type PriorityRepository interface {
	List(ctx context.Context) ([]Priority, error)
	FindByID(ctx context.Context, id string) (*Priority, error)
}

// priorityRepo is the MariaDB implementation of PriorityRepository.
type priorityRepo struct {
	db *sql.DB
}

// NewPriorityRepository creates a new MariaDB-backed priority repository.
func NewPriorityRepository(db *sql.DB) PriorityRepository {
	return &priorityRepo{db: db}
}

// priorityCols is the column list for priority queries.
const priorityCols = `id, name, detail, color, sort_order, created_at, updated_at`

// scanPriority reads a row into a Priority struct.
func scanPriority(scanner interface{ Scan(...any) error }) (*Priority, error) {
	p := &Priority{}
	err := scanner.Scan(&p.ID, &p.Name, &p.Detail, &p.Color, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// List returns all priorities in toolbar order.
func (r *priorityRepo) List(ctx context.Context) ([]Priority, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+priorityCols+` FROM event_priorities ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("listing priorities: %w", err)
	}
	defer rows.Close()

	var out []Priority
	for rows.Next() {
		p, err := scanPriority(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning priority row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating priorities: %w", err)
	}
	return out, nil
}

// FindByID returns one priority, or nil if it doesn't exist.
func (r *priorityRepo) FindByID(ctx context.Context, id string) (*Priority, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+priorityCols+` FROM event_priorities WHERE id = ?`, id)
	p, err := scanPriority(row)
	if err != nil {
		return nil, fmt.Errorf("querying priority by id: %w", err)
	}
	return p, nil
}
