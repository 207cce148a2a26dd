package sessionlog

import (
	"math"

	"github.com/aborland123/AI-Golf-Caddie/models"
)

// DefaultWindow is the number of trailing swings summarized when the caller
// does not specify a window.
const DefaultWindow = 10

// Recent returns the session's most recent swings in insertion order, at
// most window of them (DefaultWindow when window <= 0).
func Recent(records []models.Swing, sessionID string, window int) []models.Swing {
	if window <= 0 {
		window = DefaultWindow
	}

	var filtered []models.Swing
	for i := range records {
		if records[i].SessionID == sessionID {
			filtered = append(filtered, records[i])
		}
	}
	if len(filtered) > window {
		filtered = filtered[len(filtered)-window:]
	}
	return filtered
}

// SummarizeDirections computes the share of each shot direction over the
// trailing window of a session's swings, as percentages rounded to one
// decimal place. Directions that do not occur in the window are omitted.
// An empty window yields an empty map.
func SummarizeDirections(records []models.Swing, sessionID string, window int) map[string]float64 {
	recent := Recent(records, sessionID, window)
	if len(recent) == 0 {
		return map[string]float64{}
	}

	counts := make(map[string]int)
	for i := range recent {
		counts[recent[i].Direction]++
	}

	out := make(map[string]float64, len(counts))
	for dir, n := range counts {
		pct := float64(n) / float64(len(recent)) * 100
		out[dir] = math.Round(pct*10) / 10
	}
	return out
}
