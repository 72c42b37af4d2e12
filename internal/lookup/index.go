package lookup

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/harvest-calc/internal/catalog"
)

var (
	ErrNoMatch   = errors.New("no match")
	ErrAmbiguous = errors.New("ambiguous name")
)

type phrase struct {
	canonical string
	alias     string
}

type Match struct {
	Name   string
	Alias  string
	Score  float64
	Source string
}

// Index resolves loosely typed names (case, spacing, labels, typos) to
// canonical catalog names.
type Index struct {
	kind    string
	names   map[string]bool
	phrases []phrase
}

func NewIndex(kind string) *Index {
	return &Index{kind: kind, names: make(map[string]bool)}
}

func (x *Index) Register(canonical string, aliases ...string) {
	if strings.TrimSpace(canonical) == "" {
		return
	}
	x.names[canonical] = true
	x.phrases = append(x.phrases, phrase{canonical: canonical, alias: normaliseInput(canonical)})
	for _, a := range aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		x.phrases = append(x.phrases, phrase{canonical: canonical, alias: n})
	}
}

// Crops indexes crop names and labels.
func Crops(c *catalog.Catalog) *Index {
	x := NewIndex("crop")
	for _, cr := range c.Crops() {
		x.Register(cr.Name, cr.Label)
	}
	return x
}

// Mutations indexes mutation names and labels.
func Mutations(c *catalog.Catalog) *Index {
	x := NewIndex("mutation")
	for _, m := range c.Mutations() {
		x.Register(m.Name, m.Label)
	}
	return x
}

// Find ranks candidates for raw. The best match is returned with up to four
// alternates naming other canonicals.
func (x *Index) Find(raw string) (Match, []Match) {
	in := normaliseInput(raw)
	if in == "" {
		return Match{}, nil
	}
	cands := make([]Match, 0, len(x.phrases))
	for _, p := range x.phrases {
		if p.alias == in {
			score := 1.0
			source := "exact"
			if p.alias != normaliseInput(p.canonical) {
				score = 0.97
				source = "alias"
			}
			cands = append(cands, Match{Name: p.canonical, Alias: p.alias, Score: score, Source: source})
			continue
		}

		if runeLen(in) >= 2 && strings.HasPrefix(p.alias, in) {
			cands = append(cands, Match{Name: p.canonical, Alias: p.alias, Score: 0.9, Source: "prefix"})
			continue
		}

		if runeLen(in) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(in, p.alias)
		if dist > levenshteinLimit(runeLen(p.alias)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if strings.Contains(p.alias, in) {
			score += 0.04
		}
		cands = append(cands, Match{Name: p.canonical, Alias: p.alias, Score: score, Source: "lev"})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Name < cands[j].Name
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return Match{}, nil
	}
	best := cands[0]
	alts := make([]Match, 0, 4)
	seen := map[string]bool{best.Name: true}
	for _, c := range cands[1:] {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

// Resolve returns the canonical name for raw. Exact names always win; close
// runner-ups make the result ambiguous rather than guessed.
func (x *Index) Resolve(raw string) (string, error) {
	if x.names[raw] {
		return raw, nil
	}
	best, alts := x.Find(raw)
	if best.Name == "" || best.Score < 0.5 {
		return "", fmt.Errorf("%w: unknown %s %q", ErrNoMatch, x.kind, raw)
	}
	if best.Score < 0.97 && len(alts) > 0 && (best.Score-alts[0].Score) < 0.05 {
		return "", fmt.Errorf("%w: %s %q could be %q or %q", ErrAmbiguous, x.kind, raw, best.Name, alts[0].Name)
	}
	return best.Name, nil
}

// Suggest returns the closest canonical name for an unknown input, or "".
// It accepts weaker matches than Resolve.
func (x *Index) Suggest(raw string) string {
	best, _ := x.Find(raw)
	if best.Score < 0.4 {
		return ""
	}
	return best.Name
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
