// Package players implements the in-memory player directory.
package players

import (
	"sort"
	"strings"

	"github.com/qepting91/fanpulse/internal/domain"
)

// Directory answers roster queries over the static player table. It
// implements domain.PlayerDirectory.
type Directory struct {
	players []domain.Player
}

// NewDirectory returns a directory over the built-in roster.
func NewDirectory() *Directory {
	return &Directory{players: roster}
}

// NewDirectoryWith returns a directory over a caller-supplied roster,
// used by tests.
func NewDirectoryWith(players []domain.Player) *Directory {
	return &Directory{players: players}
}

// PlayersBySport returns every rostered player in the given league.
func (d *Directory) PlayersBySport(sport domain.Sport) []domain.Player {
	var out []domain.Player
	for _, p := range d.players {
		if p.Sport == sport {
			out = append(out, p)
		}
	}
	return out
}

// Match score increments: an exact term match outranks a prefix match,
// which outranks a substring match.
const (
	scoreExactName = 100.0
	scoreExactTerm = 10.0
	scorePrefix    = 5.0
	scoreSubstring = 2.0
)

// SearchByName ranks players against a free-text query. Each query term
// is scored against the player's name terms (exact > prefix > substring);
// a full-name match dominates. Manual boosts and a per-sport tie-break
// separate otherwise equal scores.
func (d *Directory) SearchByName(query string, limit int) []domain.Player {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || limit <= 0 {
		return nil
	}
	terms := strings.Fields(query)

	type scored struct {
		player domain.Player
		score  float64
	}
	var matches []scored
	for _, p := range d.players {
		name := strings.ToLower(p.Name)
		s := 0.0
		if name == query {
			s += scoreExactName
		}
		nameTerms := strings.Fields(name)
		for _, t := range terms {
			s += bestTermScore(t, nameTerms, name)
		}
		if s == 0 {
			continue
		}
		s += manualBoosts[p.Name]
		s += sportTieBreak[p.Sport]
		matches = append(matches, scored{player: p, score: s})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]domain.Player, len(matches))
	for i, m := range matches {
		out[i] = m.player
	}
	return out
}

func bestTermScore(term string, nameTerms []string, fullName string) float64 {
	best := 0.0
	for _, nt := range nameTerms {
		switch {
		case nt == term:
			return scoreExactTerm
		case strings.HasPrefix(nt, term):
			if best < scorePrefix {
				best = scorePrefix
			}
		}
	}
	if best == 0 && strings.Contains(fullName, term) {
		best = scoreSubstring
	}
	return best
}
