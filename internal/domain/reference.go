package domain

// Reference is a professional testimonial.
type Reference struct {
	Meta
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Company      string  `json:"company"`
	Relationship string  `json:"relationship"`
	Testimonial  string  `json:"testimonial"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	LinkedIn     *string `json:"linkedin"`
	Avatar       *string `json:"avatar"`
	SortOrder    int     `json:"order"`
}
