package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/fanpulse/internal/domain"
	"golang.org/x/time/rate"
)

// APIClient uses the authenticated Reddit API via go-reddit. Requires a
// script-app credential set (id, secret, username, password).
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIClient(id, secret, user, pass, userAgent string) (*APIClient, error) {
	creds := reddit.Credentials{ID: id, Secret: secret, Username: user, Password: pass}

	client, err := reddit.NewClient(creds, reddit.WithUserAgent(userAgent))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	// API Rate Limit: ~60 reqs/min (safe buffer)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &APIClient{client: client, limiter: limiter}, nil
}

func (ac *APIClient) SearchSubreddit(ctx context.Context, subreddit, query string, limit int) ([]domain.Post, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	opts := &reddit.ListPostSearchOptions{
		ListPostOptions: reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: limit},
			Time:        "month",
		},
		Sort: "relevance",
	}
	posts, _, err := ac.client.Subreddit.SearchPosts(ctx, query, subreddit, opts)
	if err != nil {
		return nil, fmt.Errorf("authenticated api error: %w", err)
	}

	var result []domain.Post
	for _, p := range posts {
		result = append(result, domain.Post{
			ID:           p.ID,
			Title:        p.Title,
			Body:         p.Body,
			Subreddit:    p.SubredditName,
			Author:       p.Author,
			Permalink:    p.Permalink,
			Score:        p.Score,
			CommentCount: p.NumberOfComments,
			CreatedUTC:   p.Created.Time.Unix(),
		})
	}
	return result, nil
}

func (ac *APIClient) Comments(ctx context.Context, postID string, limit int) ([]domain.Comment, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pc, _, err := ac.client.Post.Get(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("authenticated api error: %w", err)
	}

	var comments []domain.Comment
	for _, c := range pc.Comments {
		comments = append(comments, fromRedditComment(c, postID))
		// Top-level plus one reply level only.
		if c.Replies.Comments != nil {
			for _, reply := range c.Replies.Comments {
				comments = append(comments, fromRedditComment(reply, postID))
			}
		}
		if len(comments) >= limit {
			comments = comments[:limit]
			break
		}
	}
	return comments, nil
}

func fromRedditComment(c *reddit.Comment, postID string) domain.Comment {
	return domain.Comment{
		ID:         c.ID,
		PostID:     postID,
		Body:       c.Body,
		Author:     c.Author,
		Permalink:  c.Permalink,
		Score:      c.Score,
		CreatedUTC: c.Created.Time.Unix(),
	}
}
