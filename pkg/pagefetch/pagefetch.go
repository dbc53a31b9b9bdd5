// Package pagefetch retrieves product pages and extracts the text and
// structured hints the enrichment pipeline merges from. Fetchers have an
// explicit no-result outcome (nil) instead of errors: a timeout, a block,
// or malformed HTML all mean "no data from this page".
package pagefetch

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/sells-group/customs-cli/internal/model"
)

const (
	defaultTimeout   = 8 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; CustomsBot/1.0)"

	// maxBodyBytes caps how much of a page is read.
	maxBodyBytes = 512 * 1024

	// maxFeatures bounds the feature list per page.
	maxFeatures = 10
)

// Fetcher retrieves and extracts a single page.
type Fetcher interface {
	// Fetch returns the page extract, or nil when the page yields no data
	// for any reason. It never panics or returns an error.
	Fetch(ctx context.Context, url string) *model.PageExtract
}

// HTTPFetcher fetches pages over plain HTTP with a bounded timeout and no
// retries. The client is reused across sequential calls for connection
// efficiency.
type HTTPFetcher struct {
	userAgent string
	http      *http.Client
}

// Option configures the fetcher.
type Option func(*HTTPFetcher)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.http = hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// NewHTTPFetcher creates an HTTPFetcher with sensible defaults.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		userAgent: defaultUserAgent,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fetch implements Fetcher. Errors are logged and collapsed into nil.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) *model.PageExtract {
	extract, err := f.fetch(ctx, url)
	if err != nil {
		zap.L().Debug("pagefetch: page yielded no data",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil
	}
	return extract
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) (*model.PageExtract, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "pagefetch: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "pagefetch: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, eris.Errorf("pagefetch: status %d", resp.StatusCode)
	}

	body := io.Reader(io.LimitReader(resp.Body, maxBodyBytes))
	body, err = decodeCharset(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, eris.Wrap(err, "pagefetch: parse html")
	}

	return Extract(doc), nil
}

// decodeCharset wraps the reader with a charset decoder when the response
// declares a non-UTF-8 encoding.
func decodeCharset(r io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return r, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r, nil
	}
	charset := strings.ToLower(params["charset"])
	if charset == "" || charset == "utf-8" {
		return r, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, eris.Wrapf(err, "pagefetch: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(r), nil
}

// Extract pulls the raw text and structured hints out of a parsed document.
func Extract(doc *goquery.Document) *model.PageExtract {
	extract := &model.PageExtract{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: metaDescription(doc),
		SpecTable:       specTable(doc),
		Features:        featureList(doc),
	}

	// Strip script/style/nav/footer before flattening to text.
	doc.Find("script, style, nav, footer").Remove()
	extract.RawText = collapseWhitespace(doc.Text())

	return extract
}

func metaDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && desc != "" {
		return desc
	}
	desc, _ := doc.Find(`meta[property="og:description"]`).First().Attr("content")
	return desc
}

// specTable flattens two-column table rows into a key/value map.
func specTable(doc *goquery.Document) map[string]string {
	specs := make(map[string]string)
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		key := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if key != "" && value != "" {
			specs[key] = value
		}
	})
	if len(specs) == 0 {
		return nil
	}
	return specs
}

// featureList collects short list items that look like product features.
func featureList(doc *goquery.Document) []string {
	var features []string
	doc.Find("ul li, ol li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		text := strings.TrimSpace(item.Text())
		if len(text) > 10 && len(text) < 100 {
			features = append(features, text)
		}
		return len(features) < maxFeatures
	})
	return features
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
