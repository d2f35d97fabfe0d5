// FILE: pkg/mood/lexicon.go
// PURPOSE: Static emotion -> genre mapping used by the whole pipeline

package mood

import (
	"fmt"
	"strings"
)

// MaxBoostFactor caps per-genre boosts. Anything more aggressive skews
// the ranking so hard that base similarity stops mattering.
const MaxBoostFactor = 4.0

// maxFloorDelta caps the additive visibility floor of a rule.
const maxFloorDelta = 0.5

// Rule maps one emotion to the genres it should promote or suppress.
// Rules are immutable once the lexicon is built.
type Rule struct {
	ID string

	// Match tiers, strongest first. Phrases carry full confidence,
	// Keywords medium, BoostKeywords low.
	Phrases       []string
	Keywords      []string
	BoostKeywords []string

	// TargetGenres maps genre name -> multiplicative boost factor (>1).
	TargetGenres map[string]float64
	// AntiGenres are suppressed while this rule is active.
	AntiGenres []string
	// ExpansionTerms enrich the embedding query for better recall.
	ExpansionTerms []string

	// FloorDelta, when non-zero, additively lifts matching candidates
	// toward a minimum visibility floor after multiplicative scoring.
	// Used for emotions where the catalog is thin (e.g. horror) and a
	// strong match must not drown below generic semantic hits.
	FloorDelta float64
}

// Lexicon is the read-only rule table. Built once at startup, safe for
// concurrent reads.
type Lexicon struct {
	rules []Rule
	byID  map[string]Rule
}

// NewLexicon validates and freezes a rule set. A malformed rule is a
// programmer error and must fail at startup, never per-request.
func NewLexicon(rules []Rule) (*Lexicon, error) {
	byID := make(map[string]Rule, len(rules))
	for _, r := range rules {
		if r.ID == "" {
			return nil, fmt.Errorf("lexicon: rule with empty id")
		}
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("lexicon: duplicate rule id %q", r.ID)
		}
		if len(r.Phrases)+len(r.Keywords)+len(r.BoostKeywords) == 0 {
			return nil, fmt.Errorf("lexicon: rule %q has no match patterns", r.ID)
		}
		if len(r.TargetGenres) == 0 {
			return nil, fmt.Errorf("lexicon: rule %q has no target genres", r.ID)
		}
		for genre, factor := range r.TargetGenres {
			if factor <= 0 {
				return nil, fmt.Errorf("lexicon: rule %q genre %q has non-positive boost %f", r.ID, genre, factor)
			}
			if factor > MaxBoostFactor {
				return nil, fmt.Errorf("lexicon: rule %q genre %q boost %f exceeds cap %.1f", r.ID, genre, factor, MaxBoostFactor)
			}
		}
		if r.FloorDelta < 0 || r.FloorDelta > maxFloorDelta {
			return nil, fmt.Errorf("lexicon: rule %q floor delta %f outside [0, %.1f]", r.ID, r.FloorDelta, maxFloorDelta)
		}
		byID[r.ID] = r
	}
	return &Lexicon{rules: rules, byID: byID}, nil
}

// MustNewLexicon panics on a malformed rule set. For the built-in table
// and tests.
func MustNewLexicon(rules []Rule) *Lexicon {
	l, err := NewLexicon(rules)
	if err != nil {
		panic(err)
	}
	return l
}

// Rules returns the rule table. Callers must not mutate it.
func (l *Lexicon) Rules() []Rule {
	return l.rules
}

// Rule looks up a rule by id.
func (l *Lexicon) Rule(id string) (Rule, bool) {
	r, ok := l.byID[id]
	return r, ok
}

// HasGenre reports whether any rule targets the given genre.
func (l *Lexicon) HasGenre(genre string) bool {
	for _, r := range l.rules {
		for g := range r.TargetGenres {
			if strings.EqualFold(g, genre) {
				return true
			}
		}
	}
	return false
}

// DefaultLexicon is the production rule table for French mood queries.
// Genre names follow the TMDB English vocabulary used by the catalog.
// Boost magnitudes are deliberately bounded: the historical 10x horror
// boost made base similarity irrelevant, so horror gets a moderate
// multiplier plus a visibility floor instead.
func DefaultLexicon() *Lexicon {
	return MustNewLexicon([]Rule{
		{
			ID:      "rire",
			Phrases: []string{"j'ai envie de rire", "envie de rigoler", "besoin de rire", "faire rire", "je veux rire"},
			Keywords: []string{
				"rire", "rigoler", "marrer", "éclater", "pouffer", "comédie",
			},
			BoostKeywords: []string{
				"drôle", "amusant", "hilarant", "comique", "rigolo", "marrant", "gag", "humour", "léger",
			},
			TargetGenres: map[string]float64{"Comedy": 2.0, "Family": 1.5, "Animation": 1.3},
			ExpansionTerms: []string{
				"comedy", "humor", "funny", "entertaining", "cheerful", "lighthearted",
			},
		},
		{
			ID:      "peur",
			Phrases: []string{"j'ai envie de me faire peur", "envie d'avoir peur", "me faire flipper", "avoir la trouille", "faire peur"},
			Keywords: []string{
				"peur", "effrayer", "terrifier", "angoisser", "flipper", "horreur", "épouvante",
			},
			BoostKeywords: []string{
				"effrayant", "terrifiant", "angoissant", "flippant", "gore", "frisson",
				"cauchemar", "zombie", "fantôme", "démon", "sanglant",
			},
			TargetGenres: map[string]float64{"Horror": 3.0, "Thriller": 1.8},
			ExpansionTerms: []string{
				"horror", "scary", "frightening", "terrifying", "supernatural", "creepy",
			},
			FloorDelta: 0.25,
		},
		{
			ID:      "tristesse",
			Phrases: []string{"je me sens triste", "envie de pleurer", "me faire pleurer", "être ému"},
			Keywords: []string{
				"triste", "pleurer", "émouvoir", "bouleverser", "mélancolie", "cafard", "déprimé",
			},
			BoostKeywords: []string{
				"émouvant", "bouleversant", "touchant", "poignant", "mélancolique", "nostalgique",
			},
			TargetGenres: map[string]float64{"Drama": 2.0, "Romance": 1.5},
			AntiGenres:   []string{"Comedy"},
			ExpansionTerms: []string{
				"sad", "emotional", "dramatic", "melancholy", "touching", "tearjerker",
			},
		},
		{
			ID:      "amour",
			Phrases: []string{"je veux de la romance", "envie d'amour", "histoire d'amour", "film romantique"},
			Keywords: []string{
				"amour", "romance", "romantique", "tendresse", "passion",
			},
			BoostKeywords: []string{
				"passionné", "tendre", "sensuel", "couple", "mariage", "coeur", "sentimental",
			},
			TargetGenres: map[string]float64{"Romance": 2.5, "Drama": 1.5, "Comedy": 1.2},
			ExpansionTerms: []string{
				"romantic", "love story", "relationship", "passionate", "couple",
			},
		},
		{
			ID:      "action",
			Phrases: []string{"action et adrénaline", "quelque chose d'intense", "de l'action"},
			Keywords: []string{
				"action", "adrénaline", "bagarre", "combat", "bataille",
			},
			BoostKeywords: []string{
				"intense", "explosif", "rapide", "poursuite", "spectaculaire", "guerre",
			},
			TargetGenres: map[string]float64{"Action": 2.5, "Thriller": 2.0, "Adventure": 1.8, "Crime": 1.5},
			ExpansionTerms: []string{
				"action", "thrilling", "exciting", "adrenaline", "explosive", "epic",
			},
		},
		{
			ID:      "famille",
			Phrases: []string{"film pour famille", "avec les enfants", "film familial", "tout public"},
			Keywords: []string{
				"famille", "enfant", "familial", "enfants",
			},
			BoostKeywords: []string{
				"mignon", "innocent", "éducatif", "bienveillant", "tous âges",
			},
			TargetGenres: map[string]float64{"Family": 2.5, "Animation": 2.0, "Comedy": 1.5, "Adventure": 1.3},
			AntiGenres:   []string{"Horror"},
			ExpansionTerms: []string{
				"family", "children", "wholesome", "heartwarming", "animation",
			},
		},
		{
			ID:      "futur",
			Phrases: []string{"science-fiction et futur", "dans le futur", "technologie avancée"},
			Keywords: []string{
				"futur", "science-fiction", "sci-fi", "espace", "alien", "robot",
			},
			BoostKeywords: []string{
				"futuriste", "technologique", "spatial", "cyberpunk", "dystopie",
			},
			TargetGenres: map[string]float64{"Science Fiction": 2.5, "Action": 1.5, "Thriller": 1.3},
			ExpansionTerms: []string{
				"science fiction", "futuristic", "technology", "space", "dystopian",
			},
		},
		{
			ID:      "mystere",
			Phrases: []string{"mystère et suspense", "une enquête", "plein de mystères", "découvrir un secret"},
			Keywords: []string{
				"mystère", "suspense", "enquête", "énigme", "investigation",
			},
			BoostKeywords: []string{
				"mystérieux", "énigmatique", "secret", "détective", "révélation",
			},
			TargetGenres: map[string]float64{"Mystery": 2.5, "Thriller": 2.0, "Crime": 1.8, "Drama": 1.3},
			ExpansionTerms: []string{
				"mystery", "detective", "investigation", "puzzle", "suspenseful",
			},
		},
		{
			ID:      "detente",
			Phrases: []string{"quelque chose de léger", "envie de me détendre"},
			Keywords: []string{
				"détente", "relaxant", "paisible", "calme",
			},
			BoostKeywords: []string{
				"facile", "reposant", "doux", "tranquille",
			},
			TargetGenres: map[string]float64{"Family": 1.8, "Comedy": 1.8, "Animation": 1.8},
			AntiGenres:   []string{"Horror", "Thriller"},
			ExpansionTerms: []string{
				"relaxing", "feel-good", "gentle", "easygoing", "comfort",
			},
		},
	})
}
