// Package prompts renders the stage prompt templates embedded in the binary.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shrey-c/resume-chatbot/internal/agent/model"
)

//go:embed template/research_prompt.txt
var researchPromptText string

//go:embed template/response_prompt.txt
var responsePromptText string

var (
	researchTmpl = template.Must(template.New("research").Parse(researchPromptText))
	responseTmpl = template.Must(template.New("response").Parse(responsePromptText))
)

// RenderResearch renders the research stage prompt from the active context.
func RenderResearch(cfg model.PromptConfig, query, contextText, contextSource string) (string, error) {
	return render(researchTmpl, map[string]any{
		"SubjectName":   cfg.SubjectName,
		"ContextSource": contextSource,
		"Context":       contextText,
		"Query":         query,
	})
}

// RenderResponse renders the response stage prompt from the research findings.
func RenderResponse(cfg model.PromptConfig, query, findings string) (string, error) {
	return render(responseTmpl, map[string]any{
		"SubjectName": cfg.SubjectName,
		"Query":       query,
		"Findings":    findings,
	})
}

func render(tmpl *template.Template, vars map[string]any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, vars); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
