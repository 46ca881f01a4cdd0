// Package discovery maps a player's sport and team to the ordered list of
// communities worth searching. It is a pure table lookup: no network, no
// randomness.
package discovery

import (
	"sort"
	"strings"

	"github.com/qepting91/fanpulse/internal/domain"
)

// MaxCommunities caps the candidate list returned by Discover.
const MaxCommunities = 20

// Priority tiers, used as sort keys by the aggregator. Higher is searched
// and surfaced first.
const (
	PriorityPrimary  = 5
	PriorityTeam     = 4
	PriorityFantasy  = 3
	PriorityAnalysis = 2
	PriorityGeneral  = 1
)

// Discover returns the ordered, deduplicated candidate subreddit list for
// a player. With a known sport the team community (exact lookup, then a
// normalized fuzzy match) leads, followed by the sport's primary, fantasy,
// analysis, insider, and general tiers. With an unknown sport every
// league's primary communities are returned plus the cross-sport ones.
// The result never exceeds MaxCommunities.
func Discover(playerName string, sport domain.Sport, team string) []string {
	var out []string

	tax, known := taxonomies[sport]
	if known {
		if teamSub, ok := teamSubreddit(tax, team); ok {
			out = append(out, teamSub)
		}
		out = append(out, tax.primary...)
		out = append(out, tax.fantasy...)
		out = append(out, head(tax.analysis, 3)...)
		out = append(out, head(tax.insider, 2)...)
		out = append(out, head(general, 2)...)
	} else {
		for _, s := range domain.Sports {
			out = append(out, taxonomies[s].primary...)
		}
		out = append(out, head(general, 2)...)
	}

	out = dedupe(out)
	if len(out) > MaxCommunities {
		out = out[:MaxCommunities]
	}
	return out
}

// Priority ranks a community for the given sport: primary=5, team=4,
// fantasy=3, analysis/insider=2, general and anything unknown=1.
func Priority(subreddit string, sport domain.Sport) int {
	tax, ok := taxonomies[sport]
	if !ok {
		return PriorityGeneral
	}
	if contains(tax.primary, subreddit) {
		return PriorityPrimary
	}
	for _, teamSub := range tax.teams {
		if strings.EqualFold(teamSub, subreddit) {
			return PriorityTeam
		}
	}
	if contains(tax.fantasy, subreddit) {
		return PriorityFantasy
	}
	if contains(tax.analysis, subreddit) || contains(tax.insider, subreddit) {
		return PriorityAnalysis
	}
	return PriorityGeneral
}

// SportOf reports which league a community belongs to, or SportUnknown.
func SportOf(subreddit string) domain.Sport {
	for _, s := range domain.Sports {
		tax := taxonomies[s]
		if contains(tax.primary, subreddit) || contains(tax.fantasy, subreddit) ||
			contains(tax.analysis, subreddit) || contains(tax.insider, subreddit) {
			return s
		}
		for _, teamSub := range tax.teams {
			if strings.EqualFold(teamSub, subreddit) {
				return s
			}
		}
	}
	return domain.SportUnknown
}

// HasTeamSubreddit reports whether a dedicated community exists for team.
func HasTeamSubreddit(sport domain.Sport, team string) bool {
	tax, ok := taxonomies[sport]
	if !ok {
		return false
	}
	_, found := teamSubreddit(tax, team)
	return found
}

// HasFantasySubreddit reports whether the sport has a fantasy community.
func HasFantasySubreddit(sport domain.Sport) bool {
	return len(taxonomies[sport].fantasy) > 0
}

func teamSubreddit(tax taxonomy, team string) (string, bool) {
	if team == "" {
		return "", false
	}
	if sub, ok := tax.teams[team]; ok {
		return sub, true
	}
	// Fuzzy fallback: normalized substring match either direction, so
	// "Celtics" resolves the same as "Boston Celtics". Team names are
	// walked in sorted order so an ambiguous input ("New York") always
	// resolves to the same community.
	want := normalizeName(team)
	names := make([]string, 0, len(tax.teams))
	for name := range tax.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		got := normalizeName(name)
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return tax.teams[name], true
		}
	}
	return "", false
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dedupe(subs []string) []string {
	seen := make(map[string]struct{}, len(subs))
	out := subs[:0]
	for _, s := range subs {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func head(s []string, n int) []string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
