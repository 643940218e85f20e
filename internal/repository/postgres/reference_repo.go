package postgres

import (
	"context"
	"errors"

	"github.com/JRamonda/my-cv/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type referenceRepo struct {
	db *pgxpool.Pool
}

// NewReferenceRepository creates a new reference repository
func NewReferenceRepository(db *pgxpool.Pool) domain.ResourceRepository[domain.Reference] {
	return &referenceRepo{db: db}
}

// "references" needs quoting, it is a reserved word in SQL.
const referenceColumns = `id, name, position, company, relationship, testimonial,
	       email, phone, linkedin, avatar, sort_order, created_at, updated_at`

func scanReference(row pgx.Row) (*domain.Reference, error) {
	var ref domain.Reference
	err := row.Scan(
		&ref.ID, &ref.Name, &ref.Position, &ref.Company, &ref.Relationship,
		&ref.Testimonial, &ref.Email, &ref.Phone, &ref.LinkedIn, &ref.Avatar,
		&ref.SortOrder, &ref.CreatedAt, &ref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *referenceRepo) Create(ctx context.Context, ref *domain.Reference) error {
	query := `
		INSERT INTO "references" (
			id, name, position, company, relationship, testimonial,
			email, phone, linkedin, avatar, sort_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		ref.ID, ref.Name, ref.Position, ref.Company, ref.Relationship,
		ref.Testimonial, ref.Email, ref.Phone, ref.LinkedIn, ref.Avatar,
		ref.SortOrder, ref.CreatedAt, ref.UpdatedAt,
	)
	return err
}

// Fetch returns every reference in manual order.
func (r *referenceRepo) Fetch(ctx context.Context) ([]domain.Reference, error) {
	query := `SELECT ` + referenceColumns + ` FROM "references" ORDER BY sort_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []domain.Reference{}
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, *ref)
	}
	return refs, rows.Err()
}

func (r *referenceRepo) GetByID(ctx context.Context, id string) (*domain.Reference, error) {
	query := `SELECT ` + referenceColumns + ` FROM "references" WHERE id = $1`
	return scanReference(r.db.QueryRow(ctx, query, id))
}

func (r *referenceRepo) Update(ctx context.Context, ref *domain.Reference) error {
	query := `
		UPDATE "references" SET
			name = $2, position = $3, company = $4, relationship = $5,
			testimonial = $6, email = $7, phone = $8, linkedin = $9,
			avatar = $10, sort_order = $11, updated_at = $12
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		ref.ID, ref.Name, ref.Position, ref.Company, ref.Relationship,
		ref.Testimonial, ref.Email, ref.Phone, ref.LinkedIn, ref.Avatar,
		ref.SortOrder, ref.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *referenceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "references" WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
