package mood

import (
	"testing"
)

func TestDetectTiers(t *testing.T) {
	detector := NewDetector(DefaultLexicon())

	tests := []struct {
		name         string
		query        string
		wantEmotion  string
		wantStrength float64
	}{
		{
			name:         "exact phrase match",
			query:        "j'ai envie de rire ce soir",
			wantEmotion:  "rire",
			wantStrength: 1.0,
		},
		{
			name:         "keyword match",
			query:        "une bonne comédie",
			wantEmotion:  "rire",
			wantStrength: 0.7,
		},
		{
			name:         "boost vocabulary match",
			query:        "un truc hilarant",
			wantEmotion:  "rire",
			wantStrength: 0.4,
		},
		{
			name:         "phrase wins over keyword of the same rule",
			query:        "je me sens triste et j'ai envie de pleurer",
			wantEmotion:  "tristesse",
			wantStrength: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intents := detector.Detect(tt.query)
			if len(intents) == 0 {
				t.Fatalf("Detect(%q) = no intents", tt.query)
			}
			if intents[0].EmotionID != tt.wantEmotion {
				t.Errorf("top emotion = %q, want %q", intents[0].EmotionID, tt.wantEmotion)
			}
			if intents[0].Strength != tt.wantStrength {
				t.Errorf("strength = %v, want %v", intents[0].Strength, tt.wantStrength)
			}
		})
	}
}

func TestDetectNoMatch(t *testing.T) {
	detector := NewDetector(DefaultLexicon())
	if intents := detector.Detect("les oiseaux migrateurs du Canada"); len(intents) != 0 {
		t.Errorf("expected no intents, got %v", intents)
	}
}

func TestDetectMultipleRules(t *testing.T) {
	detector := NewDetector(DefaultLexicon())

	// "amour" via keyword and "tristesse" via keyword: both fire,
	// sorted by strength then id.
	intents := detector.Detect("une histoire d'amour triste")

	ids := make(map[string]float64)
	for _, in := range intents {
		ids[in.EmotionID] = in.Strength
	}
	if ids["amour"] != 1.0 { // "histoire d'amour" is a phrase
		t.Errorf("amour strength = %v, want 1.0", ids["amour"])
	}
	if ids["tristesse"] != 0.7 {
		t.Errorf("tristesse strength = %v, want 0.7", ids["tristesse"])
	}
	if intents[0].EmotionID != "amour" {
		t.Errorf("expected amour first, got %q", intents[0].EmotionID)
	}
}

func TestDetectSingleActivationPerRule(t *testing.T) {
	detector := NewDetector(DefaultLexicon())

	// Query hits the tristesse rule in all three tiers; only one intent
	// with the top-tier strength may come out.
	intents := detector.Detect("je me sens triste, c'est bouleversant, envie de pleurer")

	count := 0
	for _, in := range intents {
		if in.EmotionID == "tristesse" {
			count++
			if in.Strength != 1.0 {
				t.Errorf("strength = %v, want 1.0 (highest tier)", in.Strength)
			}
		}
	}
	if count != 1 {
		t.Errorf("tristesse activated %d times, want 1", count)
	}
}

func TestDetectDeterministicOrder(t *testing.T) {
	detector := NewDetector(DefaultLexicon())
	first := detector.Detect("un film d'action drôle et romantique")
	for i := 0; i < 20; i++ {
		again := detector.Detect("un film d'action drôle et romantique")
		if len(again) != len(first) {
			t.Fatalf("run %d: %d intents, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: intent %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}
