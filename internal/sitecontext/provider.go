// Package sitecontext supplies the grounding text for the chatbot: the
// pre-rendered site HTML as the primary source and the structured resume
// record serialized to text as the fallback.
package sitecontext

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/PuerkitoBio/goquery"

	"github.com/shrey-c/resume-chatbot/internal/resume"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// Config locates the pre-rendered site HTML.
type Config struct {
	HTMLPath string `envconfig:"SITE_HTML_PATH" default:"static/index.html"`
}

type contextPair struct {
	primary  string
	fallback string
}

// Provider computes and caches both context blobs. The cache is populated at
// most once per Reload and replaced atomically, so concurrent readers either
// see the old pair or the new one, never a blend.
type Provider struct {
	htmlPath string
	store    *resume.Store
	cached   atomic.Pointer[contextPair]
}

// NewProvider builds a provider over the HTML file and the resume store.
func NewProvider(cfg Config, store *resume.Store) *Provider {
	return &Provider{htmlPath: cfg.HTMLPath, store: store}
}

// Context returns the primary (site HTML) and fallback (structured resume)
// context texts. Either may be empty; a missing or unparsable HTML file only
// empties the primary source, it is never an error.
func (p *Provider) Context(_ context.Context) (primary, fallback string) {
	if pair := p.cached.Load(); pair != nil {
		return pair.primary, pair.fallback
	}

	pair := &contextPair{
		primary:  p.parseHTML(),
		fallback: resume.ContextText(p.store.Current()),
	}
	p.cached.Store(pair)
	return pair.primary, pair.fallback
}

// Reload discards the cached pair; the next Context call recomputes both
// sources. Used after an admin resume import.
func (p *Provider) Reload() {
	p.cached.Store(nil)
}

// staticSections maps the ids inside the machine-readable block to their
// section headers, in render order.
var staticSections = []struct{ id, header string }{
	{"static-intro", "INTRODUCTION"},
	{"static-experience", "PROFESSIONAL EXPERIENCE"},
	{"static-education", "EDUCATION"},
	{"static-skills", "SKILLS"},
	{"static-projects", "PROJECTS"},
	{"static-certifications", "CERTIFICATIONS"},
	{"static-awards", "AWARDS & RECOGNITION"},
	{"static-interests", "INTERESTS"},
}

func (p *Provider) parseHTML() string {
	f, err := os.Open(p.htmlPath)
	if err != nil {
		logx.Warn().Err(err).Str("path", p.htmlPath).Msg("Site HTML not available, primary context empty")
		return ""
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		logx.Error().Err(err).Str("path", p.htmlPath).Msg("Site HTML failed to parse")
		return ""
	}

	// The pre-rendered static block is authoritative when present; ignore the
	// rest of the document rather than mixing sources.
	if static := doc.Find("div#resume-static-data"); static.Length() > 0 {
		if text := extractStaticBlock(static); text != "" {
			return text
		}
	}

	return extractDynamicSections(doc)
}

func extractStaticBlock(static *goquery.Selection) string {
	var sections []string
	for _, s := range staticSections {
		if div := static.Find("div#" + s.id); div.Length() > 0 {
			sections = append(sections, fmt.Sprintf("=== %s ===\n%s", s.header, strings.TrimSpace(div.Text())))
		}
	}
	return strings.Join(sections, "\n\n")
}

// extractDynamicSections is the less reliable path for documents without the
// static block, walking the conventional page structure section by section.
func extractDynamicSections(doc *goquery.Document) string {
	var sections []string
	appendSection := func(header, body string) {
		if body != "" {
			sections = append(sections, fmt.Sprintf("=== %s ===\n%s", header, body))
		}
	}

	appendSection("INTRODUCTION", extractIntro(doc))
	appendSection("PROFESSIONAL EXPERIENCE", extractExperience(doc))
	appendSection("EDUCATION", extractEducation(doc))
	appendSection("SKILLS", extractSkills(doc))
	appendSection("PROJECTS", extractProjects(doc))

	return strings.Join(sections, "\n\n")
}

func extractIntro(doc *goquery.Document) string {
	var parts []string
	if title := strings.TrimSpace(doc.Find("title").Text()); title != "" {
		parts = append(parts, title)
	}
	if p := strings.TrimSpace(doc.Find("div#intro p").First().Text()); p != "" {
		parts = append(parts, p)
	}
	return strings.Join(parts, "\n")
}

func extractExperience(doc *goquery.Document) string {
	var jobs []string
	doc.Find("section#experience article.job").Each(func(_ int, job *goquery.Selection) {
		var info []string
		if t := strings.TrimSpace(job.Find("h3").Text()); t != "" {
			info = append(info, "Position: "+t)
		}
		if c := strings.TrimSpace(job.Find("h4").Text()); c != "" {
			info = append(info, "Company: "+c)
		}
		if d := strings.TrimSpace(job.Find("p.dates").Text()); d != "" {
			info = append(info, "Duration: "+d)
		}
		job.Find("ul li").Each(func(_ int, li *goquery.Selection) {
			if r := strings.TrimSpace(li.Text()); r != "" {
				info = append(info, "  - "+r)
			}
		})
		if len(info) > 0 {
			jobs = append(jobs, strings.Join(info, "\n"))
		}
	})
	return strings.Join(jobs, "\n\n")
}

func extractEducation(doc *goquery.Document) string {
	var entries []string
	doc.Find("section#education div.education-item").Each(func(_ int, edu *goquery.Selection) {
		var info []string
		for _, sel := range []string{"h3", "h4", "p.dates"} {
			if t := strings.TrimSpace(edu.Find(sel).Text()); t != "" {
				info = append(info, t)
			}
		}
		if len(info) > 0 {
			entries = append(entries, strings.Join(info, " | "))
		}
	})
	return strings.Join(entries, "\n")
}

func extractSkills(doc *goquery.Document) string {
	var lines []string
	doc.Find("section#skills div.skill-category").Each(func(_ int, cat *goquery.Selection) {
		name := strings.TrimSpace(cat.Find("h3").Text())
		if name == "" {
			return
		}
		var skills []string
		cat.Find("span.skill-item").Each(func(_ int, item *goquery.Selection) {
			if s := strings.TrimSpace(item.Text()); s != "" {
				skills = append(skills, s)
			}
		})
		if len(skills) > 0 {
			lines = append(lines, name+": "+strings.Join(skills, ", "))
		}
	})
	return strings.Join(lines, "\n")
}

func extractProjects(doc *goquery.Document) string {
	var projects []string
	doc.Find("section#projects article.project").Each(func(_ int, proj *goquery.Selection) {
		var info []string
		if n := strings.TrimSpace(proj.Find("h3").Text()); n != "" {
			info = append(info, "Project: "+n)
		}
		if d := strings.TrimSpace(proj.Find("p.description").Text()); d != "" {
			info = append(info, "Description: "+d)
		}
		if t := strings.TrimSpace(proj.Find("p.technologies").Text()); t != "" {
			info = append(info, "Technologies: "+t)
		}
		if len(info) > 0 {
			projects = append(projects, strings.Join(info, "\n"))
		}
	})
	return strings.Join(projects, "\n\n")
}
