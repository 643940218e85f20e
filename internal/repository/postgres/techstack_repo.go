package postgres

import (
	"context"
	"errors"

	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type techStackRepo struct {
	db *pgxpool.Pool
}

// NewTechStackRepository creates a new tech stack repository
func NewTechStackRepository(db *pgxpool.Pool) domain.ResourceRepository[domain.TechStack] {
	return &techStackRepo{db: db}
}

const techStackColumns = `id, category, name, icon, preferred, sort_order, created_at, updated_at`

func scanTechStack(row pgx.Row) (*domain.TechStack, error) {
	var t domain.TechStack
	err := row.Scan(
		&t.ID, &t.Category, &t.Name, &t.Icon, &t.Preferred, &t.SortOrder,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *techStackRepo) Create(ctx context.Context, t *domain.TechStack) error {
	query := `
		INSERT INTO tech_stacks (id, category, name, icon, preferred, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.Category, t.Name, t.Icon, t.Preferred, t.SortOrder, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// Fetch returns every tech stack entry in manual order.
func (r *techStackRepo) Fetch(ctx context.Context) ([]domain.TechStack, error) {
	query := `SELECT ` + techStackColumns + ` FROM tech_stacks ORDER BY sort_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stacks := []domain.TechStack{}
	for rows.Next() {
		t, err := scanTechStack(rows)
		if err != nil {
			return nil, err
		}
		stacks = append(stacks, *t)
	}
	return stacks, rows.Err()
}

func (r *techStackRepo) GetByID(ctx context.Context, id string) (*domain.TechStack, error) {
	query := `SELECT ` + techStackColumns + ` FROM tech_stacks WHERE id = $1`
	return scanTechStack(r.db.QueryRow(ctx, query, id))
}

func (r *techStackRepo) Update(ctx context.Context, t *domain.TechStack) error {
	query := `
		UPDATE tech_stacks SET
			category = $2, name = $3, icon = $4, preferred = $5, sort_order = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Category, t.Name, t.Icon, t.Preferred, t.SortOrder, t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *techStackRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tech_stacks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
