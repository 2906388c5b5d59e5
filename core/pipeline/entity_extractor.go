package pipeline

import "regexp"

// Matches multi-word proper-noun sequences ending in an organization
// suffix, or single capitalized words. Every capitalized word is a
// candidate entity; downstream substring search tolerates the false
// positives, so no stopword filtering is applied.
var entityPattern = regexp.MustCompile(`\b[A-Z][a-z]+ (?:[A-Z][a-z]+ )*(?:Co\.|Corporation|Inc\.|LLC)\b|\b[A-Z][a-z]+\b`)

// ExtractEntities pulls candidate entity strings out of a raw query.
// Matches are returned non-overlapping in order of appearance, duplicates
// allowed. An empty match set is valid; extraction never fails.
func ExtractEntities(query string) []string {
	return entityPattern.FindAllString(query, -1)
}
