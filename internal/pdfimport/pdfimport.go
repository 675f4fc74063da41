// Package pdfimport converts an uploaded resume PDF into the structured
// resume record. It is a batch import utility, not a hot path: text is pulled
// from the PDF and each section is parsed with one low-temperature model call
// returning a JSON fragment.
package pdfimport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/shrey-c/resume-chatbot/internal/llm"
	"github.com/shrey-c/resume-chatbot/internal/resume"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// Generator is the model call needed for field extraction.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts llm.GenerateOptions) (string, error)
}

// Parser drives the section-by-section extraction.
type Parser struct {
	gw Generator
}

// NewParser builds a parser over the given gateway.
func NewParser(gw Generator) *Parser {
	return &Parser{gw: gw}
}

// ExtractText pulls the plain text from a PDF file.
func ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return text, nil
}

// ParseResume extracts a full resume record from the PDF at path. Section
// parse failures are tolerated: a section that cannot be extracted is left
// empty and the remaining sections still import. The returned record is
// validated before being handed back.
func (p *Parser) ParseResume(ctx context.Context, path string) (resume.Resume, error) {
	text, err := ExtractText(path)
	if err != nil {
		return resume.Resume{}, err
	}

	r := resume.Resume{
		Contact: p.parseContact(ctx, text),
	}
	r.Name, r.Title, r.Summary = p.parseBasics(ctx, text)
	r.Experience = p.parseExperience(ctx, text)
	r.Education = p.parseEducation(ctx, text)
	r.Skills = p.parseSkills(ctx, text)
	r.Projects = p.parseProjects(ctx, text)

	if err := r.Validate(); err != nil {
		return resume.Resume{}, fmt.Errorf("imported resume failed validation: %w", err)
	}
	return r, nil
}

// extraction options shared by all section calls. Low temperature keeps the
// JSON fragments stable.
var extractOpts = llm.GenerateOptions{Temperature: 0.2, TopP: 0.9}

var (
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
	jsonArrayRe  = regexp.MustCompile(`(?s)\[.*\]`)
)

// askJSON issues one extraction call and unmarshals the first JSON fragment
// in the completion into out. A nil error means out is populated.
func (p *Parser) askJSON(ctx context.Context, prompt string, pattern *regexp.Regexp, out any) error {
	completion, err := p.gw.Generate(ctx, prompt, extractOpts)
	if err != nil {
		return err
	}
	fragment := pattern.FindString(completion)
	if fragment == "" {
		return fmt.Errorf("no JSON fragment in completion")
	}
	return json.Unmarshal([]byte(fragment), out)
}

func (p *Parser) parseBasics(ctx context.Context, text string) (name, title, summary string) {
	prompt := fmt.Sprintf(`Extract the candidate's identity from this resume. Return ONLY a JSON object:
{"name": "Full Name", "title": "Professional title", "summary": "2-3 sentence professional summary"}

Resume text:
%s

Return ONLY the JSON object, no other text.`, clip(text, 2000))

	var out struct {
		Name    string `json:"name"`
		Title   string `json:"title"`
		Summary string `json:"summary"`
	}
	if err := p.askJSON(ctx, prompt, jsonObjectRe, &out); err != nil {
		logx.Warn().Err(err).Msg("Basics extraction failed")
		return "", "", ""
	}
	return out.Name, out.Title, out.Summary
}

func (p *Parser) parseContact(ctx context.Context, text string) resume.ContactInfo {
	prompt := fmt.Sprintf(`Extract contact information from this resume text. Return ONLY a JSON object with these exact fields:
{"email": "email@example.com", "phone": "+1234567890", "location": "City, Country", "linkedin": "linkedin.com/in/username", "github": "github.com/username", "website": ""}

Resume text:
%s

Return ONLY the JSON object, no other text.`, clip(text, 2000))

	var out resume.ContactInfo
	if err := p.askJSON(ctx, prompt, jsonObjectRe, &out); err != nil {
		logx.Warn().Err(err).Msg("Contact extraction failed, falling back to pattern matching")
		return contactFromPatterns(text)
	}
	return out
}

// contactFromPatterns is the model-free fallback for contact details.
func contactFromPatterns(text string) resume.ContactInfo {
	var c resume.ContactInfo
	if m := regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`).FindString(text); m != "" {
		c.Email = m
	}
	if m := regexp.MustCompile(`linkedin\.com/in/[\w\-]+`).FindString(text); m != "" {
		c.LinkedIn = m
	}
	if m := regexp.MustCompile(`github\.com/[\w\-]+`).FindString(text); m != "" {
		c.GitHub = m
	}
	return c
}

func (p *Parser) parseExperience(ctx context.Context, text string) []resume.Experience {
	prompt := fmt.Sprintf(`Extract ALL work experience entries from this resume. For EACH job, return a JSON object with:
- company: Company name
- position: Job title
- location: City, Country
- start_date: YYYY-MM format
- end_date: YYYY-MM format, or "" if current
- description: Brief description (1-2 sentences)
- achievements: Array of 3-5 specific achievements with metrics

Format as JSON array: [{"company": "...", "position": "...", ...}]

Resume text:
%s

Return ONLY the JSON array, no other text.`, text)

	var out []resume.Experience
	if err := p.askJSON(ctx, prompt, jsonArrayRe, &out); err != nil {
		logx.Warn().Err(err).Msg("Experience extraction failed")
		return nil
	}
	return out
}

func (p *Parser) parseEducation(ctx context.Context, text string) []resume.Education {
	prompt := fmt.Sprintf(`Extract ALL education entries from this resume. For EACH degree, return a JSON object with:
- institution: University/College name
- degree: Degree type (e.g., "Bachelor of Technology")
- field_of_study: Major/Field (e.g., "Computer Science")
- location: City, Country
- start_date: YYYY-MM format
- end_date: YYYY-MM format
- gpa: GPA if mentioned, else ""
- honors: Array of honors/awards, empty if none

Format as JSON array: [{"institution": "...", "degree": "...", ...}]

Resume text:
%s

Return ONLY the JSON array, no other text.`, text)

	var out []resume.Education
	if err := p.askJSON(ctx, prompt, jsonArrayRe, &out); err != nil {
		logx.Warn().Err(err).Msg("Education extraction failed")
		return nil
	}
	return out
}

func (p *Parser) parseSkills(ctx context.Context, text string) []resume.Skill {
	prompt := fmt.Sprintf(`Extract ALL skills from this resume and categorize them. Return a JSON array of objects with:
- name: Skill name
- category: One of ["AI & Machine Learning", "Generative AI", "Programming", "Frameworks & Libraries", "Databases & Vector Stores", "Cloud & DevOps", "Tools & Platforms", "Soft Skills", "Other"]
- proficiency: One of ["Beginner", "Intermediate", "Advanced", "Expert"]

Format: [{"name": "Python", "category": "Programming", "proficiency": "Expert"}, ...]

Resume text:
%s

Return ONLY the JSON array.`, text)

	var out []resume.Skill
	if err := p.askJSON(ctx, prompt, jsonArrayRe, &out); err != nil {
		logx.Warn().Err(err).Msg("Skills extraction failed")
		return nil
	}
	return out
}

func (p *Parser) parseProjects(ctx context.Context, text string) []resume.Project {
	prompt := fmt.Sprintf(`Extract ALL projects from this resume. For EACH project, return a JSON object with:
- name: Project name
- description: What the project does and its impact
- technologies: Array of technologies used
- highlights: Array of key outcomes with metrics, empty if none

Format as JSON array: [{"name": "...", "description": "...", ...}]

Resume text:
%s

Return ONLY the JSON array, no other text.`, text)

	var out []resume.Project
	if err := p.askJSON(ctx, prompt, jsonArrayRe, &out); err != nil {
		logx.Warn().Err(err).Msg("Projects extraction failed")
		return nil
	}
	return out
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
