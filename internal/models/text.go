package models

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cleanText trims whitespace and normalizes s to NFC so that labels
// that look the same are stored the same.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
