package domain

// Skill proficiency levels. Stored as plain strings; the closed set is
// enforced at the request boundary only.
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelExpert       = "expert"
)

type Skill struct {
	Meta
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Level     string  `json:"level"`
	Icon      *string `json:"icon"`
	SortOrder int     `json:"order"`
}
