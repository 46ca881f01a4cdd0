package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/qepting91/fanpulse/internal/domain"
	"golang.org/x/time/rate"
)

const oauthBase = "https://oauth.reddit.com"

// PublicClient talks to the Reddit OAuth API directly with an app-only
// (client-credentials) token. No Reddit account is required.
type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     *tokenSource
	userAgent  string
}

type listingResponse struct {
	Data struct {
		Children []struct {
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type postData struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Permalink   string  `json:"permalink"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

type commentData struct {
	ID         string          `json:"id"`
	Body       string          `json:"body"`
	Author     string          `json:"author"`
	Permalink  string          `json:"permalink"`
	Score      int             `json:"score"`
	CreatedUTC float64         `json:"created_utc"`
	Replies    json.RawMessage `json:"replies"` // listing object, or "" when empty
}

type commentListing struct {
	Data struct {
		Children []struct {
			Kind string      `json:"kind"`
			Data commentData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func NewPublicClient(clientID, clientSecret, userAgent string) (*PublicClient, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("reddit client id and secret are required for public mode")
	}
	if userAgent == "" {
		return nil, fmt.Errorf("REDDIT_USER_AGENT is required for public mode")
	}
	httpClient := &http.Client{Timeout: 10 * time.Second}
	return &PublicClient{
		httpClient: httpClient,
		// App-only limit: 1 req / 2 seconds (stricter than the
		// authenticated API)
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		tokens:    newTokenSource(httpClient, clientID, clientSecret, userAgent),
		userAgent: userAgent,
	}, nil
}

func (pc *PublicClient) SearchSubreddit(ctx context.Context, subreddit, query string, limit int) ([]domain.Post, error) {
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{
		"q":           {query},
		"restrict_sr": {"on"},
		"sort":        {"relevance"},
		"t":           {"month"},
		"limit":       {fmt.Sprint(limit)},
	}
	endpoint := fmt.Sprintf("%s/r/%s/search.json?%s", oauthBase, url.PathEscape(subreddit), q.Encode())

	var listing listingResponse
	if err := pc.getJSON(ctx, endpoint, &listing); err != nil {
		return nil, err
	}

	var posts []domain.Post
	for _, child := range listing.Data.Children {
		d := child.Data
		posts = append(posts, domain.Post{
			ID:           d.ID,
			Title:        d.Title,
			Body:         d.Selftext,
			Subreddit:    d.Subreddit,
			Author:       d.Author,
			Permalink:    d.Permalink,
			Score:        d.Score,
			CommentCount: d.NumComments,
			CreatedUTC:   int64(d.CreatedUTC),
		})
	}
	return posts, nil
}

func (pc *PublicClient) Comments(ctx context.Context, postID string, limit int) ([]domain.Comment, error) {
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/comments/%s.json?limit=%d&depth=2", oauthBase, url.PathEscape(postID), limit)

	// The comments endpoint returns a two-element array: the post
	// listing, then the comment tree.
	var listings []commentListing
	if err := pc.getJSON(ctx, endpoint, &listings); err != nil {
		return nil, err
	}
	if len(listings) < 2 {
		return nil, nil
	}

	var comments []domain.Comment
	for _, child := range listings[1].Data.Children {
		if child.Kind != "t1" {
			continue // "more" stubs carry no comment body
		}
		comments = append(comments, toComment(child.Data, postID))
		// One level of replies only.
		for _, reply := range topLevelReplies(child.Data.Replies) {
			comments = append(comments, toComment(reply, postID))
		}
		if len(comments) >= limit {
			comments = comments[:limit]
			break
		}
	}
	return comments, nil
}

func topLevelReplies(raw json.RawMessage) []commentData {
	if len(raw) == 0 || string(raw) == `""` {
		return nil
	}
	var listing commentListing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil
	}
	var out []commentData
	for _, child := range listing.Data.Children {
		if child.Kind == "t1" {
			out = append(out, child.Data)
		}
	}
	return out
}

func toComment(d commentData, postID string) domain.Comment {
	return domain.Comment{
		ID:         d.ID,
		PostID:     postID,
		Body:       d.Body,
		Author:     d.Author,
		Permalink:  d.Permalink,
		Score:      d.Score,
		CreatedUTC: int64(d.CreatedUTC),
	}
}

func (pc *PublicClient) getJSON(ctx context.Context, endpoint string, out any) error {
	token, err := pc.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: api status %d", ErrAuth, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reddit api status: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
