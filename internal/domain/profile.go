package domain

import "context"

// Profile is the singleton owner card of the CV. The application treats
// the first row as canonical; extra rows are legal at the storage layer
// but never surface above it.
type Profile struct {
	Meta
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Bio          string  `json:"bio"`
	Location     string  `json:"location"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone"`
	LinkedIn     *string `json:"linkedin"`
	GitHub       *string `json:"github"`
	Website      *string `json:"website"`
	ProfileImage *string `json:"profileImage"`
	ResumeFile   *string `json:"resumeFile"`
}

type ProfileRepository interface {
	Create(ctx context.Context, p *Profile) error
	// GetFirst returns the oldest row, the canonical profile.
	GetFirst(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id string) error
}

type ProfileUsecase interface {
	Create(ctx context.Context, p *Profile) error
	Get(ctx context.Context) (*Profile, error)
	// Update merges the patch over the canonical profile, creating one
	// when none exists yet.
	Update(ctx context.Context, apply func(*Profile)) (*Profile, error)
	Delete(ctx context.Context) (*Profile, error)
}
