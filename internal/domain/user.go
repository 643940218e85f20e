package domain

import "context"

// User is the single operator account behind the admin dashboard.
// The password field holds a bcrypt hash and never leaves the API.
type User struct {
	Meta
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthResponse is the login payload: the bearer token plus the operator
// it was issued to.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
}
