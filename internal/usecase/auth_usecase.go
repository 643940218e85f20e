package usecase

import (
	"context"
	"errors"

	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/apperror"
	"github.com/JRamonda/my-cv/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login verifies the operator credentials and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		AccessToken: token,
		User:        user,
	}, nil
}
