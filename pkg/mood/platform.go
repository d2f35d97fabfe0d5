// FILE: pkg/mood/platform.go
// PURPOSE: Platform-availability preference with backfill fallback

package mood

import "strings"

// DefaultFallbackThreshold is the minimum number of platform-preferred
// results below which the remainder of the page is backfilled from the
// rest of the catalog.
const DefaultFallbackThreshold = 5

// PlatformFilter partitions candidates by platform availability. The
// caller still receives a full page when platform coverage is sparse;
// platform relevance only wins when it is plentiful.
type PlatformFilter struct {
	fallbackThreshold int
}

func NewPlatformFilter() *PlatformFilter {
	return &PlatformFilter{fallbackThreshold: DefaultFallbackThreshold}
}

// Partition splits candidates into platform-preferred and other,
// preserving input order. With no preference every candidate is
// preferred.
func (f *PlatformFilter) Partition(candidates []Candidate, preferred []string) (matched, other []Candidate) {
	if len(preferred) == 0 {
		return candidates, nil
	}

	want := make(map[string]bool, len(preferred))
	for _, p := range preferred {
		want[strings.ToLower(strings.TrimSpace(p))] = true
	}

	for _, c := range candidates {
		if platformMatch(c.Platforms, want) {
			matched = append(matched, c)
		} else {
			other = append(other, c)
		}
	}
	return matched, other
}

// Apply returns up to limit candidates with Availability set,
// preferring platform matches and backfilling from other (already in
// composite-score order) when fewer than the fallback threshold
// matched.
func (f *PlatformFilter) Apply(matched, other []Candidate, limit int) []Candidate {
	result := make([]Candidate, 0, limit)

	for _, c := range matched {
		if len(result) >= limit {
			break
		}
		c.Availability = AvailabilityPreferred
		result = append(result, c)
	}

	if len(matched) >= f.fallbackThreshold {
		return result
	}

	for _, c := range other {
		if len(result) >= limit {
			break
		}
		c.Availability = AvailabilityOther
		result = append(result, c)
	}
	return result
}

func platformMatch(platforms []string, want map[string]bool) bool {
	for _, p := range platforms {
		if want[strings.ToLower(strings.TrimSpace(p))] {
			return true
		}
	}
	return false
}
