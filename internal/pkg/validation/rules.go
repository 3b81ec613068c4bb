package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Name validation pattern - letters, spaces, hyphens and apostrophes, 2-50 chars
	NamePattern = `^[a-zA-Z\s'-]{2,50}$`

	// Email validation pattern - intentionally loose local@domain shape
	EmailPattern = `^[A-Za-z0-9+_.\-]+@(.+)$`

	// Zip code pattern - 5 digits with optional +4 extension
	ZipCodePattern = `^\d{5}(-\d{4})?$`

	// Email max length
	EmailMaxLength = 100

	// Phone minimum digit count after stripping separators
	PhoneMinDigits = 10

	// Minimum age in years computed from date of birth
	MinAgeYears = 16
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Name     *regexp.Regexp
	Email    *regexp.Regexp
	ZipCode  *regexp.Regexp
	NonDigit *regexp.Regexp
}{
	Name:     regexp.MustCompile(NamePattern),
	Email:    regexp.MustCompile(EmailPattern),
	ZipCode:  regexp.MustCompile(ZipCodePattern),
	NonDigit: regexp.MustCompile(`\D`),
}
