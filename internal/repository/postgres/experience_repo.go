package postgres

import (
	"context"
	"errors"

	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(db *pgxpool.Pool) domain.ResourceRepository[domain.Experience] {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, company, position, start_date, end_date, current, description,
	       achievements, challenges, learnings, technologies, sort_order,
	       created_at, updated_at`

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	err := row.Scan(
		&e.ID, &e.Company, &e.Position, &e.StartDate, &e.EndDate, &e.Current,
		&e.Description, pq.Array(&e.Achievements), pq.Array(&e.Challenges),
		pq.Array(&e.Learnings), pq.Array(&e.Technologies), &e.SortOrder,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `
		INSERT INTO experiences (
			id, company, position, start_date, end_date, current, description,
			achievements, challenges, learnings, technologies, sort_order,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.StartDate, e.EndDate, e.Current,
		e.Description, pq.Array(e.Achievements), pq.Array(e.Challenges),
		pq.Array(e.Learnings), pq.Array(e.Technologies), e.SortOrder,
		e.CreatedAt, e.UpdatedAt,
	)
	return err
}

// Fetch returns every experience, newest position first by manual order.
func (r *experienceRepo) Fetch(ctx context.Context) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY sort_order DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

func (r *experienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	return scanExperience(r.db.QueryRow(ctx, query, id))
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	query := `
		UPDATE experiences SET
			company = $2, position = $3, start_date = $4, end_date = $5,
			current = $6, description = $7, achievements = $8, challenges = $9,
			learnings = $10, technologies = $11, sort_order = $12, updated_at = $13
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.StartDate, e.EndDate, e.Current,
		e.Description, pq.Array(e.Achievements), pq.Array(e.Challenges),
		pq.Array(e.Learnings), pq.Array(e.Technologies), e.SortOrder, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
