package utils

import "github.com/microcosm-cc/bluemonday"

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize cleans HTML content to prevent XSS attacks, keeping safe formatting.
func Sanitize(input string) string {
	return ugc.Sanitize(input)
}

// SanitizeText strips every tag. Used for single line fields such as titles.
func SanitizeText(input string) string {
	return strict.Sanitize(input)
}
