package postgres

import (
	"context"
	"errors"

	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type projectRepo struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) domain.ResourceRepository[domain.Project] {
	return &projectRepo{db: db}
}

const projectColumns = `id, title, description, long_desc, images, demo_url, repo_url,
	       technologies, highlights, category, featured, sort_order,
	       created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.LongDesc, pq.Array(&p.Images),
		&p.DemoURL, &p.RepoURL, pq.Array(&p.Technologies), pq.Array(&p.Highlights),
		&p.Category, &p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (
			id, title, description, long_desc, images, demo_url, repo_url,
			technologies, highlights, category, featured, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.LongDesc, pq.Array(p.Images),
		p.DemoURL, p.RepoURL, pq.Array(p.Technologies), pq.Array(p.Highlights),
		p.Category, p.Featured, p.SortOrder, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// Fetch returns every project, featured first, then by manual order.
func (r *projectRepo) Fetch(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY featured DESC, sort_order DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRow(ctx, query, id))
}

func (r *projectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, long_desc = $4, images = $5,
			demo_url = $6, repo_url = $7, technologies = $8, highlights = $9,
			category = $10, featured = $11, sort_order = $12, updated_at = $13
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.LongDesc, pq.Array(p.Images),
		p.DemoURL, p.RepoURL, pq.Array(p.Technologies), pq.Array(p.Highlights),
		p.Category, p.Featured, p.SortOrder, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
