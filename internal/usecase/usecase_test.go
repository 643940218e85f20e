package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/internal/usecase"
	"github.com/JRamonda/my-cv/pkg/apperror"
	"github.com/JRamonda/my-cv/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSkillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) Update(ctx context.Context, s *domain.Skill) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProfileRepo) GetFirst(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProfileRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newSkillUsecase(repo domain.ResourceRepository[domain.Skill]) domain.ResourceUsecase[domain.Skill] {
	return usecase.NewResourceUsecase[domain.Skill]("Skill", repo)
}

func TestResourceCreate(t *testing.T) {
	mockRepo := new(MockSkillRepo)
	uc := newSkillUsecase(mockRepo)

	t.Run("Should assign id and timestamps before persisting", func(t *testing.T) {
		var persisted *domain.Skill
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Skill")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*domain.Skill)
			}).Return(nil).Once()

		s := &domain.Skill{Category: "frontend", Name: "React", Level: domain.SkillLevelExpert}
		err := uc.Create(context.Background(), s)

		assert.NoError(t, err)
		assert.NotEmpty(t, persisted.ID)
		assert.False(t, persisted.CreatedAt.IsZero())
		assert.Equal(t, persisted.CreatedAt, persisted.UpdatedAt)
		assert.Equal(t, "React", persisted.Name)
		mockRepo.AssertExpectations(t)
	})
}

func TestResourceGet(t *testing.T) {
	mockRepo := new(MockSkillRepo)
	uc := newSkillUsecase(mockRepo)

	t.Run("Should return the stored record", func(t *testing.T) {
		stored := &domain.Skill{Name: "Docker", Level: domain.SkillLevelIntermediate}
		stored.ID = "skill-1"
		mockRepo.On("GetByID", mock.Anything, "skill-1").Return(stored, nil).Once()

		got, err := uc.Get(context.Background(), "skill-1")
		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("Should translate a missing row into a named 404", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, "nope").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Get(context.Background(), "nope")
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Skill with ID nope not found", appErr.Message)
	})
}

func TestResourceUpdate(t *testing.T) {
	t.Run("Should only change patched fields", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := newSkillUsecase(mockRepo)

		stored := &domain.Skill{Category: "backend", Name: "Node.js", Level: domain.SkillLevelIntermediate, SortOrder: 4}
		stored.ID = "skill-2"
		stored.CreatedAt = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		stored.UpdatedAt = stored.CreatedAt

		mockRepo.On("GetByID", mock.Anything, "skill-2").Return(stored, nil).Once()
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Skill")).Return(nil).Once()

		got, err := uc.Update(context.Background(), "skill-2", func(s *domain.Skill) {
			s.Level = domain.SkillLevelExpert
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.SkillLevelExpert, got.Level)
		assert.Equal(t, "Node.js", got.Name)
		assert.Equal(t, "backend", got.Category)
		assert.Equal(t, 4, got.SortOrder)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should 404 on an unknown id without touching the repo", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := newSkillUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "nope").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Update(context.Background(), "nope", func(s *domain.Skill) {})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestResourceDelete(t *testing.T) {
	t.Run("Should return the record as it was before deletion", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := newSkillUsecase(mockRepo)

		stored := &domain.Skill{Name: "React", Level: domain.SkillLevelExpert}
		stored.ID = "skill-3"
		mockRepo.On("GetByID", mock.Anything, "skill-3").Return(stored, nil).Once()
		mockRepo.On("Delete", mock.Anything, "skill-3").Return(nil).Once()

		got, err := uc.Delete(context.Background(), "skill-3")
		assert.NoError(t, err)
		assert.Equal(t, "React", got.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should 404 on an unknown id", func(t *testing.T) {
		mockRepo := new(MockSkillRepo)
		uc := newSkillUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, "nope").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Delete(context.Background(), "nope")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestProfileSingleton(t *testing.T) {
	t.Run("Get should 404 when no profile exists", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)
		mockRepo.On("GetFirst", mock.Anything).Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Get(context.Background())
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Profile not found", appErr.Message)
	})

	t.Run("Update should create the profile when none exists", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetFirst", mock.Anything).Return(nil, domain.ErrNotFound).Once()
		var persisted *domain.Profile
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*domain.Profile)
			}).Return(nil).Once()

		got, err := uc.Update(context.Background(), func(p *domain.Profile) {
			p.Name = "John Doe"
			p.Title = "Full Stack Developer"
		})

		assert.NoError(t, err)
		assert.Equal(t, "John Doe", got.Name)
		assert.NotEmpty(t, persisted.ID)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Update should merge over the existing profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		stored := &domain.Profile{Name: "John Doe", Title: "Full Stack Developer", Location: "San Francisco, CA"}
		stored.ID = "profile-1"
		mockRepo.On("GetFirst", mock.Anything).Return(stored, nil).Once()
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Once()

		got, err := uc.Update(context.Background(), func(p *domain.Profile) {
			p.Title = "Staff Engineer"
		})

		assert.NoError(t, err)
		assert.Equal(t, "Staff Engineer", got.Title)
		assert.Equal(t, "John Doe", got.Name)
		assert.Equal(t, "San Francisco, CA", got.Location)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Delete should return the removed profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		stored := &domain.Profile{Name: "John Doe"}
		stored.ID = "profile-1"
		mockRepo.On("GetFirst", mock.Anything).Return(stored, nil).Once()
		mockRepo.On("Delete", mock.Anything, "profile-1").Return(nil).Once()

		got, err := uc.Delete(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "John Doe", got.Name)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	assert.NoError(t, err)

	operator := &domain.User{Email: "admin@example.com", Password: string(hash), Name: "Admin User"}
	operator.ID = "user-1"

	t.Run("Should issue a token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(operator, nil).Once()

		resp, err := uc.Login(context.Background(), "admin@example.com", "admin123")
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "admin@example.com", resp.User.Email)

		claims, err := tokens.Validate(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(operator, nil).Once()

		_, err := uc.Login(context.Background(), "admin@example.com", "wrong")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})

	t.Run("Should give the same error for an unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound).Once()

		_, err := uc.Login(context.Background(), "ghost@example.com", "admin123")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	})

	t.Run("Should pass through unexpected repository failures", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)
		dbErr := errors.New("connection reset")
		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").Return(nil, dbErr).Once()

		_, err := uc.Login(context.Background(), "admin@example.com", "admin123")
		assert.ErrorIs(t, err, dbErr)
	})
}
