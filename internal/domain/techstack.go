package domain

// TechStack is a technology badge. Preferred marks the primary stack,
// purely a display attribute.
type TechStack struct {
	Meta
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Icon      *string `json:"icon"`
	Preferred bool    `json:"preferred"`
	SortOrder int     `json:"order"`
}
