package mood

import (
	"strings"
	"testing"
)

func validRule() Rule {
	return Rule{
		ID:           "test",
		Keywords:     []string{"test"},
		TargetGenres: map[string]float64{"Comedy": 2.0},
	}
}

func TestNewLexiconRejectsMalformedRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Rule)
		wantErr string
	}{
		{
			name:    "empty id",
			mutate:  func(r *Rule) { r.ID = "" },
			wantErr: "empty id",
		},
		{
			name: "no patterns",
			mutate: func(r *Rule) {
				r.Phrases, r.Keywords, r.BoostKeywords = nil, nil, nil
			},
			wantErr: "no match patterns",
		},
		{
			name:    "no target genres",
			mutate:  func(r *Rule) { r.TargetGenres = nil },
			wantErr: "no target genres",
		},
		{
			name:    "zero boost",
			mutate:  func(r *Rule) { r.TargetGenres = map[string]float64{"Comedy": 0} },
			wantErr: "non-positive boost",
		},
		{
			name:    "boost above cap",
			mutate:  func(r *Rule) { r.TargetGenres = map[string]float64{"Horror": 10.0} },
			wantErr: "exceeds cap",
		},
		{
			name:    "negative floor",
			mutate:  func(r *Rule) { r.FloorDelta = -0.1 },
			wantErr: "floor delta",
		},
		{
			name:    "oversized floor",
			mutate:  func(r *Rule) { r.FloorDelta = 0.9 },
			wantErr: "floor delta",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRule()
			tc.mutate(&r)
			_, err := NewLexicon([]Rule{r})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestNewLexiconRejectsDuplicateIDs(t *testing.T) {
	a, b := validRule(), validRule()
	if _, err := NewLexicon([]Rule{a, b}); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLexiconLookup(t *testing.T) {
	l := MustNewLexicon([]Rule{validRule()})

	if _, ok := l.Rule("test"); !ok {
		t.Error("known rule not found")
	}
	if _, ok := l.Rule("missing"); ok {
		t.Error("unknown rule reported as found")
	}
	if !l.HasGenre("comedy") {
		t.Error("HasGenre must match case-insensitively")
	}
	if l.HasGenre("Western") {
		t.Error("untargeted genre reported")
	}
}

func TestDefaultLexiconWellFormed(t *testing.T) {
	l := DefaultLexicon()

	rules := l.Rules()
	if len(rules) == 0 {
		t.Fatal("production lexicon is empty")
	}
	for _, r := range rules {
		for genre, factor := range r.TargetGenres {
			if factor > MaxBoostFactor {
				t.Errorf("rule %s genre %s boost %f above cap", r.ID, genre, factor)
			}
		}
	}

	// The canonical comedy mapping the product depends on.
	rire, ok := l.Rule("rire")
	if !ok {
		t.Fatal("rire rule missing")
	}
	if rire.TargetGenres["Comedy"] != 2.0 {
		t.Errorf("rire comedy boost = %f, want 2.0", rire.TargetGenres["Comedy"])
	}
}
