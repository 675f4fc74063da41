package agent

import "strings"

// fallbackBucket pairs trigger keywords with a pre-authored answer. Buckets
// are evaluated in fixed priority order; the first match wins.
type fallbackBucket struct {
	keywords []string
	answer   string
}

var fallbackBuckets = []fallbackBucket{
	{
		keywords: []string{"experience", "work", "job", "role"},
		answer:   "I'm currently an ML Engineer at Telstra, where I've worked on exciting GenAI projects like AskTelstra (an enterprise chatbot serving 8000+ daily queries) and GenAI Call Drivers (analyzing 25K calls/day). I've been with Telstra since July 2021, progressing through various ML and software engineering roles. Would you like to know more about any specific project?",
	},
	{
		keywords: []string{"skill", "technology", "tech", "programming", "language"},
		answer:   "I specialize in AI/ML technologies, particularly GenAI, RAG, LangChain, and LangGraph. I'm proficient in Python, with expertise in PyTorch, FastAPI, and Azure cloud services. I also have experience with full-stack development using Spring Boot and React.js. What specific technology would you like to discuss?",
	},
	{
		keywords: []string{"project", "built", "created", "developed"},
		answer:   "I've worked on several impactful projects at Telstra: AskTelstra (reduced costs by 88%), GenAI Call Drivers (25K calls/day analysis), and NATAMA automation (saving 3M AUD annually). Each project leveraged GenAI and ML to solve real business challenges. Which project interests you?",
	},
	{
		keywords: []string{"education", "degree", "university", "college", "study"},
		answer:   "I hold a Bachelor of Technology in Computer Science from VJTI (Veermata Jijabai Technological Institute) in Mumbai, where I studied from 2017 to 2021. I've also completed certifications in Deep Learning and Data Science through Coursera.",
	},
}

const genericFallback = "I'd be happy to discuss my professional experience! I'm an ML Engineer specializing in GenAI and have worked on projects like AskTelstra, GenAI Call Drivers, and NATAMA automation at Telstra. What specific aspect of my background would you like to know more about?"

// Fallback returns a deterministic canned answer for the message, used when
// the workflow cannot produce a validated response. It cannot fail and makes
// no external calls.
func Fallback(userMessage string) string {
	lower := strings.ToLower(userMessage)
	for _, bucket := range fallbackBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.answer
			}
		}
	}
	return genericFallback
}
