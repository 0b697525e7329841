package model

// Portfolio is the profile the assistant answers questions about.
type Portfolio struct {
	Name       string           `json:"name"`
	Role       string           `json:"role"`
	Summary    string           `json:"summary"`
	Location   string           `json:"location,omitempty"`
	Skills     []SkillGroup     `json:"skills"`
	Projects   []Project        `json:"projects"`
	Experience []Experience     `json:"experience"`
	Learning   []string         `json:"learning"`
	Contact    PortfolioContact `json:"contact"`
}

// SkillGroup is a labelled list of skills, e.g. "Backend": [Go, PostgreSQL].
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Project is a portfolio project.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	URL         string   `json:"url,omitempty"`
}

// Experience is a past or current position.
type Experience struct {
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
}

// PortfolioContact holds public contact channels. Empty fields are omitted from prompts and replies.
type PortfolioContact struct {
	Email    string `json:"email,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// AllSkills flattens every skill group into one list, preserving order.
func (p Portfolio) AllSkills() []string {
	var out []string
	for _, g := range p.Skills {
		out = append(out, g.Items...)
	}
	return out
}
