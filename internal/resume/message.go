package resume

import (
	"errors"
	"strings"
)

// MaxMessageLength bounds a single chat message.
const MaxMessageLength = 500

var (
	ErrMessageEmpty   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message exceeds maximum length")
	ErrMessageUnsafe  = errors.New("message contains potentially unsafe content")
)

// injectionDenylist holds lowercase substrings that indicate an attempt to
// override the assistant's instructions. Matching is a plain substring check,
// applied identically at the HTTP boundary and again inside the workflow.
var injectionDenylist = []string{
	"ignore previous",
	"ignore all previous",
	"disregard",
	"forget everything",
	"new instructions",
	"system:",
	"assistant:",
	"you are now",
	"act as",
	"pretend to be",
	"roleplay",
}

// ValidateChatMessage applies the shared message validation contract: trimmed
// non-empty, at most MaxMessageLength characters, and free of known prompt
// injection phrases. It returns the trimmed message on success.
func ValidateChatMessage(message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", ErrMessageEmpty
	}
	if len(message) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range injectionDenylist {
		if strings.Contains(lower, phrase) {
			return "", ErrMessageUnsafe
		}
	}
	return trimmed, nil
}
