package models

import "strings"

// leaningKeywords maps substrings of the classifier's free-text output to a
// normalized label. Korean terms first: the classifier is prompted to answer
// with 진보/중도/보수, but its output is free text and sometimes includes the
// English word instead.
var leaningKeywords = []struct {
	keyword string
	label   string
}{
	{"진보", LeaningProgressive},
	{"progressive", LeaningProgressive},
	{"보수", LeaningConservative},
	{"conservative", LeaningConservative},
	{"중도", LeaningModerate},
	{"moderate", LeaningModerate},
	{"중립", LeaningModerate},
}

// NormalizeLeaning derives a normalized label from raw classifier output.
// The raw text is kept for display and filtering; the label is stored
// alongside it. Unmatched or empty text maps to "unknown".
func NormalizeLeaning(raw string) string {
	lower := strings.ToLower(raw)
	for _, k := range leaningKeywords {
		if strings.Contains(lower, k.keyword) {
			return k.label
		}
	}
	return LeaningUnknown
}
