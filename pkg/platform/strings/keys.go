// Package strings provides the key normalization and matching helpers used by
// the lookup tables.
package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeKey turns free text into a table key: trimmed, lowercased, with
// inner whitespace runs collapsed to a single underscore.
//
//	NormalizeKey("  Basmati  Rice ") // "basmati_rice"
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// DedupeKeys removes empty and repeated keys, preserving first-seen order.
func DedupeKeys(keys []string) []string {
	if len(keys) == 0 {
		return keys
	}
	seen := make(map[string]struct{}, len(keys))
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}
	return result
}

// Overlaps reports whether a contains b or b contains a.
func Overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// BestOverlap returns the index of the candidate that best matches key:
// an exact match wins, otherwise the longest candidate overlapping key, with
// earlier candidates winning ties. It returns -1 for an empty key or when
// nothing overlaps.
func BestOverlap(key string, candidates []string) int {
	if key == "" {
		return -1
	}
	best := -1
	for i, c := range candidates {
		if c == "" {
			continue
		}
		if c == key {
			return i
		}
		if !Overlaps(key, c) {
			continue
		}
		if best == -1 || len(c) > len(candidates[best]) {
			best = i
		}
	}
	return best
}

// TitleWords renders a key for display: underscores become spaces and each
// word starts with an upper-case letter.
//
//	TitleWords("pigeon_pea") // "Pigeon Pea"
func TitleWords(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
