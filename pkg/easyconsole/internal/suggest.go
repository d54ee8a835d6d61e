package internal

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestionDistance = 2

// ClosestLabel returns the index of the label nearest to input, or -1 when none
// is within a couple of edits.
func ClosestLabel(input string, labels []string) int {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return -1
	}

	best, bestDist := -1, maxSuggestionDistance+1
	for i, label := range labels {
		dist := levenshtein.ComputeDistance(input, strings.ToLower(label))
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
