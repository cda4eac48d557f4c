package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

var keywordPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// FallbackKeywords extracts the most frequent words from the transcription.
// Used when the structured analysis is degraded and carries no keywords.
func FallbackKeywords(transcription string) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range keywordPattern.FindAllString(strings.ToLower(transcription), -1) {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 10 {
		order = order[:10]
	}
	return order
}
