package resume

import "fmt"

// SkillCategory groups skills the way they are presented on the site.
type SkillCategory string

const (
	CategoryAIML        SkillCategory = "AI & Machine Learning"
	CategoryGenAI       SkillCategory = "Generative AI"
	CategoryProgramming SkillCategory = "Programming"
	CategoryFrameworks  SkillCategory = "Frameworks & Libraries"
	CategoryDatabases   SkillCategory = "Databases & Vector Stores"
	CategoryCloudDevOps SkillCategory = "Cloud & DevOps"
	CategoryTools       SkillCategory = "Tools & Platforms"
	CategorySoftSkills  SkillCategory = "Soft Skills"
	CategoryOther       SkillCategory = "Other"
)

// Skill is a single named skill with an optional proficiency level.
type Skill struct {
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Proficiency string        `json:"proficiency,omitempty"`
}

// Experience is one employment entry.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"` // empty means current
	Description  string   `json:"description"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is one study entry.
type Education struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"field_of_study"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Honors       []string `json:"honors,omitempty"`
}

// Project is a named piece of work with its technology stack.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Certification is a completed credential.
type Certification struct {
	Name          string   `json:"name"`
	Issuer        string   `json:"issuer"`
	IssueDate     string   `json:"issue_date"`
	CredentialID  string   `json:"credential_id,omitempty"`
	CredentialURL string   `json:"credential_url,omitempty"`
	Skills        []string `json:"skills,omitempty"`
}

// Award is a recognition entry.
type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// Interest is a hobby or personal interest.
type Interest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ContactInfo carries the public contact details.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// Resume is the complete record the chatbot answers from.
type Resume struct {
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Summary        string          `json:"summary"`
	Contact        ContactInfo     `json:"contact"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Awards         []Award         `json:"awards,omitempty"`
	Languages      []string        `json:"languages,omitempty"`
	Interests      []Interest      `json:"interests,omitempty"`
}

// Entry count and length bounds applied when accepting imported resume data.
const (
	maxExperience     = 20
	maxEducation      = 10
	maxSkills         = 150
	maxProjects       = 20
	maxCertifications = 20
	maxAwards         = 20
	maxLanguages      = 10
	maxInterests      = 15
	maxAchievements   = 20
	maxHighlights     = 10
	maxHonors         = 10

	maxNameLen        = 200
	maxDescriptionLen = 2000
	maxAchievementLen = 500
)

func checkRequired(field, name string, max int) error {
	if field == "" {
		return fmt.Errorf("%s is required", name)
	}
	if len(field) > max {
		return fmt.Errorf("%s too long (max %d characters)", name, max)
	}
	return nil
}

// Validate checks an Experience entry against field bounds.
func (e Experience) Validate() error {
	if err := checkRequired(e.Company, "company", maxNameLen); err != nil {
		return err
	}
	if err := checkRequired(e.Position, "position", maxNameLen); err != nil {
		return err
	}
	if err := checkRequired(e.Description, "description", maxDescriptionLen); err != nil {
		return err
	}
	if len(e.Achievements) > maxAchievements {
		return fmt.Errorf("too many achievements (max %d)", maxAchievements)
	}
	for _, a := range e.Achievements {
		if len(a) > maxAchievementLen {
			return fmt.Errorf("achievement too long (max %d characters)", maxAchievementLen)
		}
	}
	return nil
}

// Validate checks an Education entry against field bounds.
func (e Education) Validate() error {
	if err := checkRequired(e.Institution, "institution", maxNameLen); err != nil {
		return err
	}
	if err := checkRequired(e.Degree, "degree", maxNameLen); err != nil {
		return err
	}
	if len(e.Honors) > maxHonors {
		return fmt.Errorf("too many honors (max %d)", maxHonors)
	}
	return nil
}

// Validate checks a Project entry against field bounds.
func (p Project) Validate() error {
	if err := checkRequired(p.Name, "project name", maxNameLen); err != nil {
		return err
	}
	if err := checkRequired(p.Description, "project description", maxDescriptionLen); err != nil {
		return err
	}
	if len(p.Highlights) > maxHighlights {
		return fmt.Errorf("too many highlights (max %d)", maxHighlights)
	}
	return nil
}

// Validate checks the whole record, including per-entry bounds.
func (r Resume) Validate() error {
	if err := checkRequired(r.Name, "name", maxNameLen); err != nil {
		return err
	}
	if err := checkRequired(r.Title, "title", maxNameLen); err != nil {
		return err
	}
	if err := checkRequired(r.Summary, "summary", maxDescriptionLen); err != nil {
		return err
	}
	switch {
	case len(r.Experience) > maxExperience:
		return fmt.Errorf("too many experience entries (max %d)", maxExperience)
	case len(r.Education) > maxEducation:
		return fmt.Errorf("too many education entries (max %d)", maxEducation)
	case len(r.Skills) > maxSkills:
		return fmt.Errorf("too many skills (max %d)", maxSkills)
	case len(r.Projects) > maxProjects:
		return fmt.Errorf("too many projects (max %d)", maxProjects)
	case len(r.Certifications) > maxCertifications:
		return fmt.Errorf("too many certifications (max %d)", maxCertifications)
	case len(r.Awards) > maxAwards:
		return fmt.Errorf("too many awards (max %d)", maxAwards)
	case len(r.Languages) > maxLanguages:
		return fmt.Errorf("too many languages (max %d)", maxLanguages)
	case len(r.Interests) > maxInterests:
		return fmt.Errorf("too many interests (max %d)", maxInterests)
	}
	for i, e := range r.Experience {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("experience[%d]: %w", i, err)
		}
	}
	for i, e := range r.Education {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("education[%d]: %w", i, err)
		}
	}
	for i, p := range r.Projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("projects[%d]: %w", i, err)
		}
	}
	return nil
}
