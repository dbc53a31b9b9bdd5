package websearch

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/customs-cli/internal/model"
)

const (
	defaultBaseURL   = "https://www.google.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultTimeout   = 10 * time.Second
)

// GoogleClient scrapes Google's HTML results page. No API key, no paging;
// one GET per query against the shared session client.
type GoogleClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// Option configures the client.
type Option func(*GoogleClient)

// WithBaseURL overrides the search endpoint (for testing).
func WithBaseURL(u string) Option {
	return func(c *GoogleClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *GoogleClient) {
		c.http = hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *GoogleClient) {
		c.userAgent = ua
	}
}

// NewGoogleClient creates a Google HTML search client.
func NewGoogleClient(opts ...Option) *GoogleClient {
	c := &GoogleClient{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search implements Provider. Errors are logged and collapsed into the
// empty result list.
func (c *GoogleClient) Search(ctx context.Context, query string) []model.SearchResult {
	results, err := c.search(ctx, query)
	if err != nil {
		zap.L().Debug("websearch: query failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil
	}
	return results
}

func (c *GoogleClient) search(ctx context.Context, query string) ([]model.SearchResult, error) {
	searchURL := c.baseURL + "/search?q=" + url.QueryEscape(query) + "&num=" + strconv.Itoa(MaxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "websearch: create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "websearch: fetch results page")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("websearch: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "websearch: parse results page")
	}

	var results []model.SearchResult
	doc.Find("div.g").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := strings.TrimSpace(s.Find("h3").First().Text())
		href, _ := s.Find("a").First().Attr("href")

		if title != "" && strings.HasPrefix(href, "http") {
			results = append(results, model.SearchResult{Title: title, URL: href})
		}
		return len(results) < MaxResults
	})

	return results, nil
}
