package client

import "time"

// Wire types mirroring the API's JSON representations. They live here
// rather than in the server's internal packages so importers of this
// package can name them.

type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	LinkedIn     *string   `json:"linkedin"`
	GitHub       *string   `json:"github"`
	Website      *string   `json:"website"`
	ProfileImage *string   `json:"profileImage"`
	ResumeFile   *string   `json:"resumeFile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Experience struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
	Challenges   []string   `json:"challenges"`
	Learnings    []string   `json:"learnings"`
	Technologies []string   `json:"technologies"`
	SortOrder    int        `json:"order"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	LongDesc     *string   `json:"longDesc"`
	Images       []string  `json:"images"`
	DemoURL      *string   `json:"demoUrl"`
	RepoURL      *string   `json:"repoUrl"`
	Technologies []string  `json:"technologies"`
	Highlights   []string  `json:"highlights"`
	Category     string    `json:"category"`
	Featured     bool      `json:"featured"`
	SortOrder    int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Skill struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	Icon      *string   `json:"icon"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TechStack struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	Preferred bool      `json:"preferred"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Reference struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	Company      string    `json:"company"`
	Relationship string    `json:"relationship"`
	Testimonial  string    `json:"testimonial"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	LinkedIn     *string   `json:"linkedin"`
	Avatar       *string   `json:"avatar"`
	SortOrder    int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// User is the operator behind the admin token. The API never returns
// the password field.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse is the login payload.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}
