package postgres

import (
	"context"
	"errors"

	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) domain.ResourceRepository[domain.Skill] {
	return &skillRepo{db: db}
}

const skillColumns = `id, category, name, level, icon, sort_order, created_at, updated_at`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(
		&s.ID, &s.Category, &s.Name, &s.Level, &s.Icon, &s.SortOrder,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `
		INSERT INTO skills (id, category, name, level, icon, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.Category, s.Name, s.Level, s.Icon, s.SortOrder, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

// Fetch returns every skill in manual order.
func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY sort_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return scanSkill(r.db.QueryRow(ctx, query, id))
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	query := `
		UPDATE skills SET
			category = $2, name = $3, level = $4, icon = $5, sort_order = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Category, s.Name, s.Level, s.Icon, s.SortOrder, s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
