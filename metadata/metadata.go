// Package metadata fetches page metadata for a video link so the catalog
// entry can be prefilled instead of typed by hand.
//
// Most video hosts publish OpenGraph tags; those are preferred, with the
// document <title> as fallback. Fetch is best-effort: a page without usable
// tags yields empty fields, not an error.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"cliphub/retry"
)

// PageMeta holds whatever could be extracted from the page.
type PageMeta struct {
	Title       string
	Description string
	Thumbnail   string
}

// ErrUnusableContent indicates the page was fetched but is not HTML.
var ErrUnusableContent = errors.New("metadata: content is not html")

// Fetcher fetches and parses page metadata. The zero value is not usable;
// call NewFetcher.
type Fetcher struct {
	client *http.Client
	retry  retry.Config
}

// NewFetcher creates a fetcher around client. A nil client gets a default
// with a 10 second timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Fetcher{
		client: client,
		retry:  retry.DefaultConfig(),
	}
}

// Fetch retrieves pageURL and extracts OpenGraph metadata. Transient fetch
// failures are retried with backoff; 4xx responses are permanent.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*PageMeta, error) {
	var meta *PageMeta
	err := retry.Do(ctx, f.retry, isRetryable, func(ctx context.Context) error {
		m, err := f.fetchOnce(ctx, pageURL)
		if err != nil {
			return err
		}
		meta = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, pageURL string) (*PageMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("metadata: build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata: fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httpError{URL: pageURL, Status: resp.StatusCode}
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return nil, ErrUnusableContent
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("metadata: parse %s: %w", pageURL, err)
	}
	return extract(doc), nil
}

// extract pulls OpenGraph properties, falling back to the document title.
func extract(doc *goquery.Document) *PageMeta {
	meta := &PageMeta{
		Title:       metaContent(doc, "og:title"),
		Description: metaContent(doc, "og:description"),
		Thumbnail:   metaContent(doc, "og:image"),
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if meta.Description == "" {
		if d, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			meta.Description = strings.TrimSpace(d)
		}
	}
	return meta
}

func metaContent(doc *goquery.Document, property string) string {
	sel := fmt.Sprintf(`meta[property=%q]`, property)
	if v, ok := doc.Find(sel).Attr("content"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// httpError is a non-200 response; 4xx is permanent, 5xx transient.
type httpError struct {
	URL    string
	Status int
}

func (e *httpError) Error() string {
	return fmt.Sprintf("metadata: fetch %s: status %d", e.URL, e.Status)
}

func isRetryable(err error) bool {
	var he *httpError
	if errors.As(err, &he) {
		return he.Status >= 500
	}
	if errors.Is(err, ErrUnusableContent) {
		return false
	}
	return retry.IsRetryable(err)
}
