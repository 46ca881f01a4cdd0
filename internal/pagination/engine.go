// Package pagination derives paged, filtered, sorted views over an
// aggregated post collection.
package pagination

import (
	"sort"
	"strings"
	"time"

	"github.com/qepting91/fanpulse/internal/domain"
)

// AllSubreddits selects every community in the subreddit filter.
const AllSubreddits = "all"

// categoryKeywords maps each filter category to the substrings checked
// against a post's lowercased title+body.
var categoryKeywords = map[domain.FilterCategory][]string{
	domain.CategoryInjury:      {"injury", "injured", "questionable", "doubtful", "out for"},
	domain.CategoryTrade:       {"trade", "traded", "rumor", "deal", "sign"},
	domain.CategoryFantasy:     {"fantasy", "draft", "lineup", "start", "sit"},
	domain.CategoryPerformance: {"points", "yards", "goals", "stats", "highlight", "career"},
}

// Filters is the current filter/sort selection.
type Filters struct {
	Sort      domain.SortKey
	Category  domain.FilterCategory
	Subreddit string // a community id, or AllSubreddits
}

// FilterUpdate carries a partial change to Filters; nil fields are left
// untouched.
type FilterUpdate struct {
	Sort      *domain.SortKey
	Category  *domain.FilterCategory
	Subreddit *string
}

// View is one derived page plus its navigation state.
type View struct {
	Posts         []domain.Post `json:"posts"`
	Page          int           `json:"page"`
	PageSize      int           `json:"page_size"`
	TotalPages    int           `json:"total_pages"`
	TotalFiltered int           `json:"total_filtered"`
	HasNext       bool          `json:"has_next"`
	HasPrevious   bool          `json:"has_previous"`
	Subreddits    []string      `json:"subreddits"`
}

// Engine applies filter, sort, and pagination to a fixed post
// collection. It is not safe for concurrent use; each request builds its
// own engine over the cached result set.
type Engine struct {
	posts    []domain.Post
	pageSize int
	page     int // 1-based
	filters  Filters
	now      func() time.Time
}

// NewEngine builds an engine over posts. A nil now defaults to time.Now;
// it feeds the age term of the relevance sort.
func NewEngine(posts []domain.Post, pageSize int, now func() time.Time) *Engine {
	if pageSize < 1 {
		pageSize = 10
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		posts:    posts,
		pageSize: pageSize,
		page:     1,
		filters:  Filters{Sort: domain.SortHot, Category: domain.CategoryAll, Subreddit: AllSubreddits},
		now:      now,
	}
}

// Filters returns the current selection.
func (e *Engine) Filters() Filters { return e.filters }

// Page returns the current 1-based page.
func (e *Engine) Page() int { return e.page }

// UpdateFilters applies a partial filter change and resets the page to 1.
// The reset holds for every update, even a no-op one.
func (e *Engine) UpdateFilters(u FilterUpdate) {
	if u.Sort != nil {
		e.filters.Sort = *u.Sort
	}
	if u.Category != nil {
		e.filters.Category = *u.Category
	}
	if u.Subreddit != nil {
		e.filters.Subreddit = *u.Subreddit
	}
	e.page = 1
}

// SetPage jumps to page n; out-of-range values are ignored.
func (e *Engine) SetPage(n int) {
	if n < 1 || n > e.totalPages() {
		return
	}
	e.page = n
}

// Next advances one page if one exists.
func (e *Engine) Next() { e.SetPage(e.page + 1) }

// Previous steps back one page if one exists.
func (e *Engine) Previous() { e.SetPage(e.page - 1) }

// View derives the current page. Subreddits always reflects the
// unfiltered collection so filter choices stay stable while filtering.
func (e *Engine) View() View {
	filtered := e.filtered()
	e.sortPosts(filtered)

	total := len(filtered)
	totalPages := (total + e.pageSize - 1) / e.pageSize

	page := e.page
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * e.pageSize
	end := start + e.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View{
		Posts:         filtered[start:end],
		Page:          page,
		PageSize:      e.pageSize,
		TotalPages:    totalPages,
		TotalFiltered: total,
		HasNext:       page < totalPages,
		HasPrevious:   page > 1,
		Subreddits:    uniqueSubreddits(e.posts),
	}
}

func (e *Engine) filtered() []domain.Post {
	out := make([]domain.Post, 0, len(e.posts))
	for _, p := range e.posts {
		if e.filters.Subreddit != "" && e.filters.Subreddit != AllSubreddits &&
			!strings.EqualFold(p.Subreddit, e.filters.Subreddit) {
			continue
		}
		if !matchesCategory(p, e.filters.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesCategory(p domain.Post, cat domain.FilterCategory) bool {
	keywords, ok := categoryKeywords[cat]
	if !ok {
		return true // CategoryAll and unknown categories pass everything
	}
	text := strings.ToLower(p.Title + " " + p.Body)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func (e *Engine) sortPosts(posts []domain.Post) {
	switch e.filters.Sort {
	case domain.SortNew:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedUTC > posts[j].CreatedUTC
		})
	case domain.SortRelevance:
		now := e.now().Unix()
		sort.SliceStable(posts, func(i, j int) bool {
			return relevance(posts[i], now) > relevance(posts[j], now)
		})
	default: // SortHot, SortTop
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Score > posts[j].Score
		})
	}
}

// relevance is score x (1 + age in days). The formula amplifies old
// high-score posts rather than decaying them; that matches the shipped
// behavior and stays until product says otherwise.
func relevance(p domain.Post, nowUnix int64) float64 {
	ageDays := float64(nowUnix-p.CreatedUTC) / 86400
	if ageDays < 0 {
		ageDays = 0
	}
	return float64(p.Score) * (1 + ageDays)
}

func (e *Engine) totalPages() int {
	n := len(e.filtered())
	return (n + e.pageSize - 1) / e.pageSize
}

func uniqueSubreddits(posts []domain.Post) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range posts {
		if _, ok := seen[p.Subreddit]; ok {
			continue
		}
		seen[p.Subreddit] = struct{}{}
		out = append(out, p.Subreddit)
	}
	sort.Strings(out)
	return out
}
