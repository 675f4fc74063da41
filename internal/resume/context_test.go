package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextTextSections(t *testing.T) {
	r := Resume{
		Name:    "Test Person",
		Title:   "Engineer",
		Summary: "Builds things.",
		Contact: ContactInfo{Location: "Melbourne"},
		Experience: []Experience{{
			Company:      "Acme",
			Position:     "Developer",
			StartDate:    "2021-07",
			Description:  "Built internal tools.",
			Achievements: []string{"Shipped v1"},
		}},
		Education: []Education{{
			Institution:  "VJTI",
			Degree:       "B.Tech",
			FieldOfStudy: "Computer Science",
			StartDate:    "2017",
			EndDate:      "2021",
		}},
		Skills: []Skill{
			{Name: "Python", Category: CategoryProgramming},
			{Name: "Go", Category: CategoryProgramming},
			{Name: "RAG", Category: CategoryGenAI},
		},
		Projects: []Project{{
			Name:         "Tooling",
			Description:  "Automation suite",
			Technologies: []string{"Python", "Azure"},
			Highlights:   []string{"Saved time"},
		}},
	}

	text := ContextText(r)

	assert.Contains(t, text, "Name: Test Person")
	assert.Contains(t, text, "Location: Melbourne")
	assert.Contains(t, text, "=== PROFESSIONAL EXPERIENCE ===")
	assert.Contains(t, text, "Duration: 2021-07 - Present", "empty end date renders as Present")
	assert.Contains(t, text, "- Shipped v1")
	assert.Contains(t, text, "=== EDUCATION ===")
	assert.Contains(t, text, "B.Tech in Computer Science, VJTI (2017 - 2021)")
	assert.Contains(t, text, "=== SKILLS ===")
	assert.Contains(t, text, "Programming: Python, Go", "skills grouped by category")
	assert.Contains(t, text, "Generative AI: RAG")
	assert.Contains(t, text, "=== PROJECTS ===")
	assert.Contains(t, text, "Technologies: Python, Azure")
}

func TestContextTextOmitsEmptySections(t *testing.T) {
	text := ContextText(Resume{Name: "N", Title: "T", Summary: "S"})

	assert.NotContains(t, text, "=== PROFESSIONAL EXPERIENCE ===")
	assert.NotContains(t, text, "=== EDUCATION ===")
	assert.NotContains(t, text, "=== SKILLS ===")
	assert.NotContains(t, text, "=== PROJECTS ===")
	assert.NotContains(t, text, "=== CERTIFICATIONS ===")
	assert.NotContains(t, text, "=== AWARDS & RECOGNITION ===")
	assert.NotContains(t, text, "Location:")
}

func TestContextTextSkillCategoryOrderIsFirstSeen(t *testing.T) {
	r := Resume{
		Name: "N", Title: "T", Summary: "S",
		Skills: []Skill{
			{Name: "LangChain", Category: CategoryGenAI},
			{Name: "Python", Category: CategoryProgramming},
			{Name: "RAG", Category: CategoryGenAI},
		},
	}

	text := ContextText(r)
	genaiIdx := strings.Index(text, "Generative AI:")
	progIdx := strings.Index(text, "Programming:")
	assert.Greater(t, progIdx, genaiIdx, "categories keep first-seen order")
	assert.Contains(t, text, "Generative AI: LangChain, RAG")
}
