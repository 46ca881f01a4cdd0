package discovery

import (
	"testing"

	"github.com/qepting91/fanpulse/internal/domain"
)

func TestDiscoverKnownSportAndTeam(t *testing.T) {
	subs := Discover("Jayson Tatum", domain.SportNBA, "Boston Celtics")

	if len(subs) == 0 || len(subs) > MaxCommunities {
		t.Fatalf("got %d communities; want 1..%d", len(subs), MaxCommunities)
	}
	if subs[0] != "bostonceltics" {
		t.Fatalf("first community = %q; want team subreddit bostonceltics", subs[0])
	}

	seen := make(map[string]bool)
	for _, s := range subs {
		if seen[s] {
			t.Fatalf("duplicate community %q", s)
		}
		seen[s] = true
	}

	// Team-specific must precede the general cross-sport communities.
	teamIdx, generalIdx := -1, -1
	for i, s := range subs {
		if s == "bostonceltics" {
			teamIdx = i
		}
		if s == "sports" {
			generalIdx = i
		}
	}
	if generalIdx == -1 {
		t.Fatal("general community missing from candidate list")
	}
	if teamIdx == -1 || teamIdx > generalIdx {
		t.Fatalf("team community at %d must precede general at %d", teamIdx, generalIdx)
	}
}

func TestDiscoverIsDeterministic(t *testing.T) {
	a := Discover("Jayson Tatum", domain.SportNBA, "Boston Celtics")
	b := Discover("Jayson Tatum", domain.SportNBA, "Boston Celtics")
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestDiscoverFuzzyTeamMatch(t *testing.T) {
	subs := Discover("Jayson Tatum", domain.SportNBA, "Celtics")
	if subs[0] != "bostonceltics" {
		t.Fatalf("fuzzy match on %q gave first community %q; want bostonceltics", "Celtics", subs[0])
	}
}

func TestDiscoverAmbiguousTeamResolvesStably(t *testing.T) {
	// "New York" fuzzy-matches both the Giants and the Jets; the sorted
	// walk must pick the same community every time, and it is the
	// lexicographically first team name.
	for i := 0; i < 50; i++ {
		subs := Discover("Somebody", domain.SportNFL, "New York")
		if subs[0] != "NYGiants" {
			t.Fatalf("run %d: first community = %q; want NYGiants", i, subs[0])
		}
	}
}

func TestDiscoverUnknownTeamStartsWithPrimary(t *testing.T) {
	subs := Discover("Somebody", domain.SportNBA, "No Such Team")
	if subs[0] != "nba" {
		t.Fatalf("first community = %q; want nba", subs[0])
	}
}

func TestDiscoverUnknownSportUsesAllPrimaries(t *testing.T) {
	subs := Discover("Somebody", domain.SportUnknown, "")
	if len(subs) > MaxCommunities {
		t.Fatalf("got %d communities; want <= %d", len(subs), MaxCommunities)
	}
	want := map[string]bool{"nba": false, "nfl": false, "nhl": false, "baseball": false, "sports": false}
	for _, s := range subs {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for sub, found := range want {
		if !found {
			t.Errorf("expected %q in unknown-sport candidates", sub)
		}
	}
}

func TestPriorityTiers(t *testing.T) {
	cases := []struct {
		sub   string
		sport domain.Sport
		want  int
	}{
		{"nba", domain.SportNBA, PriorityPrimary},
		{"bostonceltics", domain.SportNBA, PriorityTeam},
		{"fantasybball", domain.SportNBA, PriorityFantasy},
		{"nbadiscussion", domain.SportNBA, PriorityAnalysis},
		{"NBATradeIdeas", domain.SportNBA, PriorityAnalysis},
		{"sports", domain.SportNBA, PriorityGeneral},
		{"totally_unknown", domain.SportNBA, PriorityGeneral},
		{"nba", domain.SportUnknown, PriorityGeneral},
	}
	for _, c := range cases {
		if got := Priority(c.sub, c.sport); got != c.want {
			t.Errorf("Priority(%q, %q) = %d; want %d", c.sub, c.sport, got, c.want)
		}
	}
	if Priority("nba", domain.SportNBA) <= Priority("sports", domain.SportNBA) {
		t.Error("primary community must outrank general")
	}
}

func TestSportOf(t *testing.T) {
	cases := []struct {
		sub  string
		want domain.Sport
	}{
		{"nba", domain.SportNBA},
		{"bostonceltics", domain.SportNBA},
		{"fantasyfootball", domain.SportNFL},
		{"EdmontonOilers", domain.SportNHL},
		{"baseball", domain.SportMLB},
		{"sports", domain.SportUnknown},
		{"nonexistent", domain.SportUnknown},
	}
	for _, c := range cases {
		if got := SportOf(c.sub); got != c.want {
			t.Errorf("SportOf(%q) = %q; want %q", c.sub, got, c.want)
		}
	}
}

func TestHasTeamSubreddit(t *testing.T) {
	if !HasTeamSubreddit(domain.SportNFL, "Kansas City Chiefs") {
		t.Error("expected a Chiefs subreddit")
	}
	if HasTeamSubreddit(domain.SportNFL, "No Such Team") {
		t.Error("unexpected subreddit for fake team")
	}
	if HasTeamSubreddit(domain.SportUnknown, "Kansas City Chiefs") {
		t.Error("unknown sport must not resolve a team subreddit")
	}
}
