// Package masking redacts customer identifiers and credentials from text
// that leaves the trust boundary, mainly log lines and operator payload
// previews. Compiled once at startup; stateless afterwards.
package masking

import (
	"regexp"
)

// CompiledPattern is one redaction rule.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// Service applies the configured redaction rules in order.
type Service struct {
	patterns []*CompiledPattern
}

// builtinPatterns covers what this system actually handles: phone numbers in
// E.164-ish shapes and bearer tokens pasted into payloads.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
}{
	{
		name: "phone_number",
		// 8-15 digits, optional plus, tolerating separators. Keeps the last
		// two digits so operators can still correlate.
		pattern:     `\+?\d[\d\s\-().]{6,13}(\d{2})`,
		replacement: `***$1`,
	},
	{
		name:        "bearer_token",
		pattern:     `(?i)bearer\s+[A-Za-z0-9._\-]{8,}`,
		replacement: `Bearer ***`,
	},
	{
		name:        "api_key",
		pattern:     `(?i)(api[_-]?key|access[_-]?token)["':=\s]+[A-Za-z0-9._\-]{8,}`,
		replacement: `$1=***`,
	},
}

// NewService compiles the built-in patterns. Panics on a bad built-in; that
// is a programming error, not a runtime condition.
func NewService() *Service {
	s := &Service{}
	for _, p := range builtinPatterns {
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       regexp.MustCompile(p.pattern),
			Replacement: p.replacement,
		})
	}
	return s
}

// Mask applies every pattern to the text.
func (s *Service) Mask(text string) string {
	if text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskPhone redacts a bare phone number, keeping the last two digits.
func (s *Service) MaskPhone(phone string) string {
	if len(phone) <= 2 {
		return "***"
	}
	return "***" + phone[len(phone)-2:]
}
