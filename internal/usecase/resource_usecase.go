package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/apperror"

	"github.com/google/uuid"
)

// metaHolder constrains *T to an entity embedding domain.Meta, which is
// how the engine reaches the generated id and timestamps without knowing
// the concrete resource type.
type metaHolder[T any] interface {
	*T
	EntityMeta() *domain.Meta
}

// resourceUsecase is the generic CRUD engine. One instance per resource
// replaces the six near-identical service copies the app would otherwise
// carry; everything resource-specific lives in the repository (SQL and
// sort order) and the HTTP request types (field schema).
type resourceUsecase[T any, PT metaHolder[T]] struct {
	name string
	repo domain.ResourceRepository[T]
}

func NewResourceUsecase[T any, PT metaHolder[T]](name string, repo domain.ResourceRepository[T]) domain.ResourceUsecase[T] {
	return &resourceUsecase[T, PT]{name: name, repo: repo}
}

func (u *resourceUsecase[T, PT]) notFound(id string) *apperror.AppError {
	return apperror.NotFound(fmt.Sprintf("%s with ID %s not found", u.name, id))
}

func (u *resourceUsecase[T, PT]) Create(ctx context.Context, m *T) error {
	meta := PT(m).EntityMeta()
	meta.ID = uuid.NewString()
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	return u.repo.Create(ctx, m)
}

func (u *resourceUsecase[T, PT]) List(ctx context.Context) ([]T, error) {
	return u.repo.Fetch(ctx)
}

func (u *resourceUsecase[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, u.notFound(id)
		}
		return nil, err
	}
	return m, nil
}

// Update loads the row, lets the patch mutate only the fields it carries
// and persists the merge. Concurrent updates are last write wins.
func (u *resourceUsecase[T, PT]) Update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	m, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(m)
	PT(m).EntityMeta().UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, m); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, u.notFound(id)
		}
		return nil, err
	}
	return m, nil
}

// Delete removes the row and returns its prior representation.
func (u *resourceUsecase[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	m, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, u.notFound(id)
		}
		return nil, err
	}
	return m, nil
}
