package collector

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"

	"github.com/qepting91/fanpulse/internal/domain"
)

// MockClient implements domain.Collector with generated data. Useful for
// demos and local development without Reddit credentials. Output is
// deterministic per (subreddit, query) so repeated searches agree.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

var mockTitles = []string{
	"%s is unreal right now, what a performance tonight",
	"Thoughts on %s after the last few games?",
	"%s injury update: listed as questionable",
	"[Highlight] %s takes over in the fourth",
	"Is %s still a top-10 player in the league?",
	"%s trade rumors heating up again",
	"Start or sit %s this week?",
	"%s just had a career high, incredible stats",
}

func (mc *MockClient) SearchSubreddit(ctx context.Context, subreddit, query string, limit int) ([]domain.Post, error) {
	// Simulate network latency, respecting cancellation.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(50 * time.Millisecond):
	}

	rng := rand.New(rand.NewSource(seedFor(subreddit, query)))
	n := limit
	if n > len(mockTitles) {
		n = len(mockTitles)
	}
	now := time.Now().Unix()

	var posts []domain.Post
	for i := 0; i < n; i++ {
		posts = append(posts, domain.Post{
			// The query rides along in the ID so Comments can name the
			// player without widening the Collector interface.
			ID:           fmt.Sprintf("mock_%s_%s_%d", subreddit, slugify(query), i),
			Title:        fmt.Sprintf(mockTitles[i], query),
			Body:         fmt.Sprintf("Discussion about %s in r/%s.", query, subreddit),
			Subreddit:    subreddit,
			Author:       fmt.Sprintf("fan_%d", rng.Intn(1000)),
			Permalink:    fmt.Sprintf("/r/%s/comments/mock_%d", subreddit, i),
			Score:        rng.Intn(500),
			CommentCount: rng.Intn(80),
			CreatedUTC:   now - int64(rng.Intn(86400*7)),
		})
	}
	return posts, nil
}

func (mc *MockClient) Comments(ctx context.Context, postID string, limit int) ([]domain.Comment, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(20 * time.Millisecond):
	}

	rng := rand.New(rand.NewSource(seedFor(postID, "")))
	now := time.Now().Unix()
	name := nameFromMockID(postID)

	var comments []domain.Comment
	for i := 0; i < limit; i++ {
		comments = append(comments, domain.Comment{
			ID:         fmt.Sprintf("%s_c%d", postID, i),
			PostID:     postID,
			Body:       fmt.Sprintf("%s has been great this season, comment %d", name, i),
			Author:     fmt.Sprintf("fan_%d", rng.Intn(1000)),
			Permalink:  fmt.Sprintf("/comments/%s/c%d", postID, i),
			Score:      rng.Intn(200),
			CreatedUTC: now - int64(rng.Intn(3600)),
		})
	}
	return comments, nil
}

// slugify lowercases the query and joins its words with hyphens so it
// can live inside an underscore-delimited post ID.
func slugify(q string) string {
	fields := strings.Fields(strings.ToLower(q))
	return strings.ReplaceAll(strings.Join(fields, "-"), "_", "-")
}

// nameFromMockID recovers the player name slug from an ID minted by
// SearchSubreddit. Unrecognized IDs fall back to a generic subject.
func nameFromMockID(postID string) string {
	parts := strings.Split(postID, "_")
	if len(parts) < 4 || parts[0] != "mock" {
		return "This player"
	}
	return strings.ReplaceAll(parts[len(parts)-2], "-", " ")
}

func seedFor(a, b string) int64 {
	h := fnv.New64a()
	h.Write([]byte(a))
	h.Write([]byte{0})
	h.Write([]byte(b))
	return int64(h.Sum64())
}
