package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultTokenURL = "https://www.reddit.com/api/v1/access_token"
	defaultAPIBase  = "https://oauth.reddit.com"
)

// Post is a raw Reddit submission as fetched from the search API.
// Immutable once fetched; produced fresh per request.
type Post struct {
	ID          string
	Title       string
	Selftext    string
	Author      string
	CreatedUTC  int64
	Ups         int
	NumComments int
	URL         string
	Subreddit   string
}

// Client searches Reddit for posts mentioning a ticker using app-only
// (client_credentials) OAuth.
type Client struct {
	clientID     string
	clientSecret string
	userAgent    string

	tokenURL string
	apiBase  string

	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

// NewClient creates a new Reddit search client
func NewClient(clientID, clientSecret string) *Client {
	// Configure custom HTTP transport for connection pooling
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		userAgent:    "android:" + clientID + ":v1.0 (by u/K6av6ai82j0zo8HB721)",
		tokenURL:     defaultTokenURL,
		apiBase:      defaultAPIBase,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ensureToken fetches an app-only token if none is held or the held one is
// about to expire. Tokens are refreshed one minute early to avoid racing the
// expiry on in-flight requests.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	token := c.accessToken
	valid := token != "" && time.Now().Before(c.expiresAt.Add(-time.Minute))
	c.mu.RUnlock()

	if valid {
		return token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, "POST", c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token request returned %d: %s", resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	c.mu.Lock()
	c.accessToken = tr.AccessToken
	c.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	c.mu.Unlock()

	return tr.AccessToken, nil
}

// listing mirrors the subset of Reddit's search response we consume
type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				ID          string  `json:"id"`
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				Author      string  `json:"author"`
				CreatedUTC  float64 `json:"created_utc"`
				Ups         int     `json:"ups"`
				NumComments int     `json:"num_comments"`
				URL         string  `json:"url"`
				Subreddit   string  `json:"subreddit"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search queries r/all for posts mentioning $TICKER, newest-first semantics
// left to Reddit's relevance sort as in the original dashboard.
func (c *Client) Search(ctx context.Context, ticker string, limit int) ([]Post, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", "$"+strings.ToUpper(ticker))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("sort", "relevance")

	searchURL := fmt.Sprintf("%s/r/all/search?%s", c.apiBase, query.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search returned %d: %s", resp.StatusCode, string(body))
	}

	var list listing
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	posts := make([]Post, 0, len(list.Data.Children))
	for _, child := range list.Data.Children {
		d := child.Data
		posts = append(posts, Post{
			ID:          d.ID,
			Title:       d.Title,
			Selftext:    d.Selftext,
			Author:      d.Author,
			CreatedUTC:  int64(d.CreatedUTC),
			Ups:         d.Ups,
			NumComments: d.NumComments,
			URL:         d.URL,
			Subreddit:   d.Subreddit,
		})
	}

	return posts, nil
}
