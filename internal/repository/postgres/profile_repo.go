package postgres

import (
	"context"
	"errors"

	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, name, title, bio, location, email, phone, linkedin, github,
	       website, profile_image, resume_file, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Bio, &p.Location, &p.Email, &p.Phone,
		&p.LinkedIn, &p.GitHub, &p.Website, &p.ProfileImage, &p.ResumeFile,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, name, title, bio, location, email, phone, linkedin, github,
			website, profile_image, resume_file, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Bio, p.Location, p.Email, p.Phone,
		p.LinkedIn, p.GitHub, p.Website, p.ProfileImage, p.ResumeFile,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetFirst returns the oldest row. The profile is a singleton by
// convention; additional rows are legal in storage but never exposed.
func (r *profileRepo) GetFirst(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at ASC LIMIT 1`
	return scanProfile(r.db.QueryRow(ctx, query))
}

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles SET
			name = $2, title = $3, bio = $4, location = $5, email = $6,
			phone = $7, linkedin = $8, github = $9, website = $10,
			profile_image = $11, resume_file = $12, updated_at = $13
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Title, p.Bio, p.Location, p.Email, p.Phone,
		p.LinkedIn, p.GitHub, p.Website, p.ProfileImage, p.ResumeFile,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
