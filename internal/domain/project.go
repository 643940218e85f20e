package domain

// Project is a portfolio entry. Category is an open string; the UI
// conventionally uses web, mobile, desktop or other.
type Project struct {
	Meta
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	LongDesc     *string  `json:"longDesc"`
	Images       []string `json:"images"`
	DemoURL      *string  `json:"demoUrl"`
	RepoURL      *string  `json:"repoUrl"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
	SortOrder    int      `json:"order"`
}
