// Package slug derives URL-safe board identifiers from user input.
package slug

import (
	"regexp"
	"strings"
)

const (
	MinLength = 2
	MaxLength = 40
)

var (
	quotes   = strings.NewReplacer("'", "", `"`, "")
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	pattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Normalize lowercases and trims input, drops quotes, collapses every run of
// characters outside [a-z0-9] into one hyphen and cuts the result to
// MaxLength. Input without any letter or digit yields "".
func Normalize(input string) string {
	s := strings.TrimSpace(strings.ToLower(input))
	s = quotes.Replace(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}

// Valid reports whether s is already a well-formed board slug.
func Valid(s string) bool {
	return len(s) >= MinLength && len(s) <= MaxLength && pattern.MatchString(s)
}
