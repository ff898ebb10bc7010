// Package suggest ranks known command words by their similarity to a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a word to be suggested.
const threshold = 0.5

type scored struct {
	word  string
	score float64
}

// FindSimilar returns up to maxResults words from candidates that resemble target, best match
// first. Duplicate candidates are reported once.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	seen := make(map[string]bool, len(candidates))
	matches := make([]scored, 0, len(candidates))
	for _, word := range candidates {
		if seen[word] {
			continue
		}
		seen[word] = true
		if score := Similarity(target, word); score > threshold {
			matches = append(matches, scored{word: word, score: score})
		}
	}

	slices.SortFunc(matches, func(a, b scored) int {
		if a.score == b.score {
			return cmp.Compare(a.word, b.word)
		}
		return cmp.Compare(b.score, a.score)
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(matches) && i < maxResults; i++ {
		result = append(result, matches[i].word)
	}
	return result
}

// Similarity scores how close b is to a, from 0 (unrelated) to 1 (equal ignoring case). A word
// that b starts with scores 0.9.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshtein(a, b)
	longest := float64(max(len(a), len(b)))
	return 1.0 - float64(distance)/longest
}

func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
