package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/apperror"

	"github.com/google/uuid"
)

// profileUsecase handles the singleton resource. It deviates from the
// generic engine in two ways: there is no id in its operations, and
// Update creates the row when none exists instead of failing.
type profileUsecase struct {
	repo domain.ProfileRepository
}

func NewProfileUsecase(repo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{repo: repo}
}

func (u *profileUsecase) Create(ctx context.Context, p *domain.Profile) error {
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return u.repo.Create(ctx, p)
}

func (u *profileUsecase) Get(ctx context.Context) (*domain.Profile, error) {
	p, err := u.repo.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return p, nil
}

func (u *profileUsecase) Update(ctx context.Context, apply func(*domain.Profile)) (*domain.Profile, error) {
	p, err := u.repo.GetFirst(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		// No profile yet: the partial payload becomes the initial row.
		p = &domain.Profile{}
		apply(p)
		if err := u.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}

	apply(p)
	p.UpdatedAt = time.Now().UTC()

	if err := u.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *profileUsecase) Delete(ctx context.Context) (*domain.Profile, error) {
	p, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.repo.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return p, nil
}
