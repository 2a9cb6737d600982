package service

import (
	"regexp"
	"strings"
)

var (
	fenceStartRe = regexp.MustCompile("(?is)^\\s*```(?:json|text)?\\s*")
	fenceEndRe   = regexp.MustCompile("(?is)\\s*```\\s*$")
)

// cleanLLMResponse quita fences ``` y BOM, y deja el texto plano usable como
// enunciado de pregunta.
func cleanLLMResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\uFEFF")
	s = fenceStartRe.ReplaceAllString(s, "")
	s = fenceEndRe.ReplaceAllString(s, "")
	s = strings.Trim(strings.TrimSpace(s), `"`)
	return strings.TrimSpace(s)
}
