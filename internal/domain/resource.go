package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("resource not found")

// Meta holds the generated columns shared by every CV resource.
// Embedding it gives an entity its identifier and timestamps, and
// lets the generic usecase reach them through EntityMeta.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityMeta is promoted onto every entity that embeds Meta.
func (m *Meta) EntityMeta() *Meta { return m }

// ResourceRepository is the persistence contract every CV resource
// implements. Fetch returns all rows in the resource's fixed order;
// there is no pagination or filtering.
type ResourceRepository[T any] interface {
	Create(ctx context.Context, m *T) error
	Fetch(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, m *T) error
	Delete(ctx context.Context, id string) error
}

// ResourceUsecase is the generic CRUD engine contract. Update loads the
// existing row, applies the patch closure over it and persists the merge,
// so partial input only ever touches the supplied fields.
type ResourceUsecase[T any] interface {
	Create(ctx context.Context, m *T) error
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, apply func(*T)) (*T, error)
	Delete(ctx context.Context, id string) (*T, error)
}
