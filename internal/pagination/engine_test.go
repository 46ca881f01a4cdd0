package pagination

import (
	"fmt"
	"testing"
	"time"

	"github.com/qepting91/fanpulse/internal/domain"
)

func fixedNow() time.Time { return time.Unix(1_700_000_000, 0) }

func makePosts(n int) []domain.Post {
	posts := make([]domain.Post, n)
	for i := range posts {
		posts[i] = domain.Post{
			ID:         fmt.Sprintf("p%d", i),
			Title:      fmt.Sprintf("post %d", i),
			Subreddit:  "nba",
			Score:      n - i, // descending scores so hot order is stable
			CreatedUTC: int64(1000 + i),
		}
	}
	return posts
}

func sortPtr(s domain.SortKey) *domain.SortKey              { return &s }
func catPtr(c domain.FilterCategory) *domain.FilterCategory { return &c }
func strPtr(s string) *string                               { return &s }

func TestViewPaginationMath(t *testing.T) {
	tests := []struct {
		posts, pageSize, wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 5, 5},
	}
	for _, tt := range tests {
		e := NewEngine(makePosts(tt.posts), tt.pageSize, fixedNow)
		v := e.View()
		if v.TotalPages != tt.wantPages {
			t.Errorf("%d posts / page size %d: TotalPages = %d, want %d",
				tt.posts, tt.pageSize, v.TotalPages, tt.wantPages)
		}
		if v.TotalFiltered != tt.posts {
			t.Errorf("%d posts: TotalFiltered = %d", tt.posts, v.TotalFiltered)
		}
	}
}

func TestNavigationFlags(t *testing.T) {
	e := NewEngine(makePosts(25), 10, fixedNow)

	v := e.View()
	if v.HasPrevious || !v.HasNext {
		t.Fatalf("page 1: HasPrevious=%v HasNext=%v", v.HasPrevious, v.HasNext)
	}

	e.Next()
	v = e.View()
	if !v.HasPrevious || !v.HasNext || v.Page != 2 {
		t.Fatalf("page 2: %+v", v)
	}

	e.Next()
	v = e.View()
	if !v.HasPrevious || v.HasNext || v.Page != 3 {
		t.Fatalf("last page: %+v", v)
	}
	if len(v.Posts) != 5 {
		t.Fatalf("last page holds %d posts; want 5", len(v.Posts))
	}

	// Next beyond the end is a no-op.
	e.Next()
	if e.Page() != 3 {
		t.Fatalf("Next past last page moved to %d", e.Page())
	}
}

func TestSetPageIgnoresOutOfRange(t *testing.T) {
	e := NewEngine(makePosts(25), 10, fixedNow)
	for _, n := range []int{0, -1, 4, 100} {
		e.SetPage(n)
		if e.Page() != 1 {
			t.Fatalf("SetPage(%d) moved to %d; want untouched 1", n, e.Page())
		}
	}
	e.SetPage(3)
	if e.Page() != 3 {
		t.Fatal("SetPage(3) should land on the last page")
	}
	e.Previous()
	if e.Page() != 2 {
		t.Fatalf("Previous from 3 landed on %d", e.Page())
	}
}

func TestUpdateFiltersAlwaysResetsPage(t *testing.T) {
	e := NewEngine(makePosts(25), 10, fixedNow)
	e.SetPage(3)

	// Even an empty update resets to page 1.
	e.UpdateFilters(FilterUpdate{})
	if e.Page() != 1 {
		t.Fatalf("empty update left page at %d", e.Page())
	}

	e.SetPage(2)
	e.UpdateFilters(FilterUpdate{Sort: sortPtr(domain.SortNew)})
	if e.Page() != 1 {
		t.Fatal("sort change must reset page")
	}
	if e.Filters().Sort != domain.SortNew {
		t.Fatalf("sort not applied: %+v", e.Filters())
	}
	// Untouched fields keep their values.
	if e.Filters().Subreddit != AllSubreddits || e.Filters().Category != domain.CategoryAll {
		t.Fatalf("partial update clobbered other fields: %+v", e.Filters())
	}
}

func TestSubredditFilter(t *testing.T) {
	posts := []domain.Post{
		{ID: "a", Subreddit: "nba", Score: 3},
		{ID: "b", Subreddit: "bostonceltics", Score: 2},
		{ID: "c", Subreddit: "nba", Score: 1},
	}
	e := NewEngine(posts, 10, fixedNow)
	e.UpdateFilters(FilterUpdate{Subreddit: strPtr("NBA")}) // case-insensitive

	v := e.View()
	if v.TotalFiltered != 2 {
		t.Fatalf("filtered to %d posts; want 2", v.TotalFiltered)
	}
	for _, p := range v.Posts {
		if p.Subreddit != "nba" {
			t.Fatalf("leaked post from %q", p.Subreddit)
		}
	}
	// Available communities come from the unfiltered set, alphabetical.
	want := []string{"bostonceltics", "nba"}
	if len(v.Subreddits) != 2 || v.Subreddits[0] != want[0] || v.Subreddits[1] != want[1] {
		t.Fatalf("Subreddits = %v; want %v", v.Subreddits, want)
	}
}

func TestCategoryFilterMatchesKeywords(t *testing.T) {
	posts := []domain.Post{
		{ID: "inj", Title: "Questionable for tonight with ankle injury"},
		{ID: "trd", Title: "Blockbuster trade rumor"},
		{ID: "fan", Title: "Who do I start in fantasy this week", Body: "lineup help"},
		{ID: "prf", Title: "40 points on 20 shots", Body: "career night"},
		{ID: "oth", Title: "Postgame thread"},
	}
	tests := []struct {
		cat  domain.FilterCategory
		want []string
	}{
		{domain.CategoryAll, []string{"inj", "trd", "fan", "prf", "oth"}},
		{domain.CategoryInjury, []string{"inj"}},
		{domain.CategoryTrade, []string{"trd"}},
		{domain.CategoryFantasy, []string{"fan"}},
		{domain.CategoryPerformance, []string{"prf"}},
	}
	for _, tt := range tests {
		e := NewEngine(posts, 10, fixedNow)
		e.UpdateFilters(FilterUpdate{Category: catPtr(tt.cat)})
		v := e.View()
		if v.TotalFiltered != len(tt.want) {
			t.Errorf("%s: matched %d posts, want %d", tt.cat, v.TotalFiltered, len(tt.want))
			continue
		}
		got := make(map[string]bool, len(v.Posts))
		for _, p := range v.Posts {
			got[p.ID] = true
		}
		for _, id := range tt.want {
			if !got[id] {
				t.Errorf("%s: missing post %s", tt.cat, id)
			}
		}
	}
}

func TestSortOrders(t *testing.T) {
	now := fixedNow()
	day := int64(86400)
	posts := []domain.Post{
		{ID: "newLow", Score: 10, CreatedUTC: now.Unix() - day},      // 1 day old
		{ID: "oldHigh", Score: 100, CreatedUTC: now.Unix() - 10*day}, // 10 days old
		{ID: "midMid", Score: 50, CreatedUTC: now.Unix() - 5*day},
	}

	order := func(e *Engine) []string {
		v := e.View()
		ids := make([]string, len(v.Posts))
		for i, p := range v.Posts {
			ids[i] = p.ID
		}
		return ids
	}

	e := NewEngine(posts, 10, fixedNow) // default hot: score descending
	got := order(e)
	if got[0] != "oldHigh" || got[1] != "midMid" || got[2] != "newLow" {
		t.Fatalf("hot order = %v", got)
	}

	e.UpdateFilters(FilterUpdate{Sort: sortPtr(domain.SortNew)})
	got = order(e)
	if got[0] != "newLow" || got[2] != "oldHigh" {
		t.Fatalf("new order = %v", got)
	}

	// Relevance is score x (1 + age in days): old high-score posts rank
	// first because age amplifies rather than decays.
	// oldHigh: 100*11=1100, midMid: 50*6=300, newLow: 10*2=20.
	e.UpdateFilters(FilterUpdate{Sort: sortPtr(domain.SortRelevance)})
	got = order(e)
	if got[0] != "oldHigh" || got[1] != "midMid" || got[2] != "newLow" {
		t.Fatalf("relevance order = %v", got)
	}
}

func TestViewClampsStalePageAfterShrinkingFilter(t *testing.T) {
	posts := makePosts(25)
	posts[0].Title = "big trade news"
	e := NewEngine(posts, 10, fixedNow)
	e.SetPage(3)

	// Mutating filters via UpdateFilters resets the page, so force the
	// stale-page path through View's own clamp instead.
	e.filters.Category = domain.CategoryTrade
	v := e.View()
	if v.TotalFiltered != 1 || v.Page != 1 {
		t.Fatalf("clamped view: %+v", v)
	}
	if len(v.Posts) != 1 {
		t.Fatalf("page holds %d posts; want 1", len(v.Posts))
	}
}

func TestEmptyCollection(t *testing.T) {
	e := NewEngine(nil, 10, fixedNow)
	v := e.View()
	if v.TotalPages != 0 || v.HasNext || v.HasPrevious || len(v.Posts) != 0 {
		t.Fatalf("empty view: %+v", v)
	}
}
