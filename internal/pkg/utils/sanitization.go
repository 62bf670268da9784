package utils

import (
	"regexp"
	"strings"
	"wav-intake-service/internal/pkg/constvars"
)

var unsafeFileNameChar = regexp.MustCompile(constvars.RegexUnsafeFileNameChar)

// SanitizeDocumentFileName turns an arbitrary document name into a safe
// upload filename: unsafe characters become underscores and a .pdf
// extension is guaranteed (matched case-insensitively).
func SanitizeDocumentFileName(name string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base = constvars.DefaultDocumentBaseName
	}
	base = unsafeFileNameChar.ReplaceAllString(base, "_")
	if strings.HasSuffix(strings.ToLower(base), constvars.DocumentFileExtension) {
		return base
	}
	return base + constvars.DocumentFileExtension
}

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
