package resume

import (
	"fmt"
	"strings"
)

// ContextText serializes a resume into the labeled plain-text form handed to
// the language model as grounding context. Sections with no entries are
// omitted rather than rendered empty.
func ContextText(r Resume) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Summary: %s\n", r.Summary)
	if r.Contact.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", r.Contact.Location)
	}

	if len(r.Experience) > 0 {
		b.WriteString("\n=== PROFESSIONAL EXPERIENCE ===\n")
		for _, e := range r.Experience {
			end := e.EndDate
			if end == "" {
				end = "Present"
			}
			fmt.Fprintf(&b, "\nPosition: %s\nCompany: %s\nDuration: %s - %s\n%s\n",
				e.Position, e.Company, e.StartDate, end, e.Description)
			for _, a := range e.Achievements {
				fmt.Fprintf(&b, "- %s\n", a)
			}
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("\n=== EDUCATION ===\n")
		for _, e := range r.Education {
			fmt.Fprintf(&b, "%s in %s, %s (%s - %s)\n",
				e.Degree, e.FieldOfStudy, e.Institution, e.StartDate, e.EndDate)
		}
	}

	if len(r.Skills) > 0 {
		b.WriteString("\n=== SKILLS ===\n")
		byCategory := make(map[SkillCategory][]string)
		var order []SkillCategory
		for _, s := range r.Skills {
			if _, seen := byCategory[s.Category]; !seen {
				order = append(order, s.Category)
			}
			byCategory[s.Category] = append(byCategory[s.Category], s.Name)
		}
		for _, cat := range order {
			fmt.Fprintf(&b, "%s: %s\n", cat, strings.Join(byCategory[cat], ", "))
		}
	}

	if len(r.Projects) > 0 {
		b.WriteString("\n=== PROJECTS ===\n")
		for _, p := range r.Projects {
			fmt.Fprintf(&b, "\nProject: %s\nDescription: %s\nTechnologies: %s\n",
				p.Name, p.Description, strings.Join(p.Technologies, ", "))
			for _, h := range p.Highlights {
				fmt.Fprintf(&b, "- %s\n", h)
			}
		}
	}

	if len(r.Certifications) > 0 {
		b.WriteString("\n=== CERTIFICATIONS ===\n")
		for _, c := range r.Certifications {
			fmt.Fprintf(&b, "%s | Issuer: %s | Date: %s\n", c.Name, c.Issuer, c.IssueDate)
		}
	}

	if len(r.Awards) > 0 {
		b.WriteString("\n=== AWARDS & RECOGNITION ===\n")
		for _, a := range r.Awards {
			fmt.Fprintf(&b, "%s | Issuer: %s | Date: %s\n", a.Title, a.Issuer, a.Date)
		}
	}

	if len(r.Interests) > 0 {
		b.WriteString("\n=== INTERESTS ===\n")
		for _, i := range r.Interests {
			if i.Description != "" {
				fmt.Fprintf(&b, "%s: %s\n", i.Name, i.Description)
			} else {
				fmt.Fprintf(&b, "%s\n", i.Name)
			}
		}
	}

	return b.String()
}
