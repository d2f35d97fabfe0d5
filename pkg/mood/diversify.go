// FILE: pkg/mood/diversify.go
// PURPOSE: Title dedup and per-genre caps on the ranked page

package mood

import "strings"

// Diversifier keeps the strongest detected genre from crowding every
// slot of the page. Candidates above the high-confidence threshold are
// trusted more and get a looser per-genre cap.
type Diversifier struct {
	// highConfidenceRatio partitions candidates: composite scores at or
	// above ratio*max are "high confidence".
	highConfidenceRatio float64
}

func NewDiversifier() *Diversifier {
	return &Diversifier{highConfidenceRatio: 0.8}
}

// Diversify returns at most target candidates. Duplicated titles keep
// only their first (highest-scored) occurrence. Within the
// high-confidence partition a primary genre may fill up to
// max(2, target/2) slots, in the remainder only max(1, target/4).
// Skipped candidates are excluded, never re-scored, so the output can
// be shorter than target.
func (d *Diversifier) Diversify(candidates []Candidate, target int) []Candidate {
	if len(candidates) == 0 || target <= 0 {
		return nil
	}

	maxScore := candidates[0].CompositeScore
	for _, c := range candidates {
		if c.CompositeScore > maxScore {
			maxScore = c.CompositeScore
		}
	}
	threshold := maxScore * d.highConfidenceRatio

	var high, rest []Candidate
	for _, c := range candidates {
		if c.CompositeScore >= threshold {
			high = append(high, c)
		} else {
			rest = append(rest, c)
		}
	}

	highCap := target / 2
	if highCap < 2 {
		highCap = 2
	}
	restCap := target / 4
	if restCap < 1 {
		restCap = 1
	}

	seenTitles := make(map[string]bool)
	genreCounts := make(map[string]int)
	result := make([]Candidate, 0, target)

	take := func(pool []Candidate, genreCap int) {
		for _, c := range pool {
			if len(result) >= target {
				return
			}
			title := strings.ToLower(c.Title)
			if seenTitles[title] {
				continue
			}
			genre := strings.ToLower(c.PrimaryGenre())
			if genreCounts[genre] >= genreCap {
				continue
			}
			result = append(result, c)
			seenTitles[title] = true
			genreCounts[genre]++
		}
	}

	take(high, highCap)
	take(rest, restCap)
	return result
}
