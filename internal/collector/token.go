package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrAuth marks credential failures. Callers treat it as a hard stop
// rather than a degradable per-request error.
var ErrAuth = errors.New("reddit authentication failed")

const defaultTokenURL = "https://www.reddit.com/api/v1/access_token"

// refreshSkew renews tokens slightly before their reported expiry so a
// request never leaves with a token that dies in flight.
const refreshSkew = 30 * time.Second

// tokenSource fetches and caches an app-only OAuth token using the
// client-credentials grant. Safe for concurrent use.
type tokenSource struct {
	httpClient   *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
	userAgent    string
	now          func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newTokenSource(httpClient *http.Client, clientID, clientSecret, userAgent string) *tokenSource {
	return &tokenSource{
		httpClient:   httpClient,
		tokenURL:     defaultTokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    userAgent,
		now:          time.Now,
	}
}

// Token returns the cached token, refreshing it when it is within the
// skew window of expiring.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.expiry.Add(-refreshSkew)) {
		return ts.token, nil
	}
	if err := ts.fetchLocked(ctx); err != nil {
		return "", err
	}
	return ts.token, nil
}

func (ts *tokenSource) fetchLocked(ctx context.Context) error {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(ts.clientID, ts.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", ts.userAgent)

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: token endpoint status %d", ErrAuth, resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: decoding token response: %v", ErrAuth, err)
	}
	if body.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrAuth)
	}

	ts.token = body.AccessToken
	ts.expiry = ts.now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return nil
}
