package domain

import "context"

// Post is a single discussion thread fetched from a community.
// Immutable once fetched; lifecycle is tied to the cache entry holding it.
type Post struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Body         string `json:"body,omitempty"`
	Subreddit    string `json:"subreddit"`
	Author       string `json:"author"`
	Permalink    string `json:"permalink"`
	Score        int    `json:"score"`
	CommentCount int    `json:"comment_count"`
	CreatedUTC   int64  `json:"created_utc"`
}

// Comment is a reply under a post. Only top-level comments and one level
// of replies are ever extracted.
type Comment struct {
	ID         string `json:"id"`
	PostID     string `json:"post_id"`
	Body       string `json:"body"`
	Author     string `json:"author"`
	Permalink  string `json:"permalink"`
	Score      int    `json:"score"`
	CreatedUTC int64  `json:"created_utc"`
}

// Player is one entry in the player directory.
type Player struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Sport    Sport  `json:"sport"`
}

// Tag marks a ranked player as notable.
type Tag string

const (
	TagNone     Tag = ""
	TagTrending Tag = "trending"
	TagElite    Tag = "elite"
)

// PlayerScore holds the component scores for one player.
// All components are bounded to [0,100]; Total is the weighted sum.
// Values are never mutated after a ranking pass; a re-rank produces
// fresh PlayerScore values.
type PlayerScore struct {
	Player      Player  `json:"player"`
	Buzz        float64 `json:"buzz"`
	Performance float64 `json:"performance"`
	Fantasy     float64 `json:"fantasy"`
	News        float64 `json:"news"`
	Coverage    float64 `json:"coverage"`
	Total       float64 `json:"total"`
	Tag         Tag     `json:"tag,omitempty"`
}

// SearchResult is the aggregated outcome of a player mention search.
type SearchResult struct {
	Posts              []Post    `json:"posts"`
	Comments           []Comment `json:"comments"`
	SearchedSubreddits []string  `json:"searched_subreddits"`
}

// Collector fetches discussion data from the external source.
type Collector interface {
	// SearchSubreddit returns posts in one subreddit matching the query.
	SearchSubreddit(ctx context.Context, subreddit, query string, limit int) ([]Post, error)
	// Comments returns up to limit comments for a post, top-level plus
	// one level of replies.
	Comments(ctx context.Context, postID string, limit int) ([]Comment, error)
}

// PlayerDirectory answers roster queries.
type PlayerDirectory interface {
	PlayersBySport(sport Sport) []Player
	SearchByName(query string, limit int) []Player
}
