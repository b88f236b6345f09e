// internal/scraper/extractor.go
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// RawField is one candidate key/value pair from a spec table row. Each row
// yields two entries: the bare lowercased label and the lowercased
// "{category}: {label}" composite, since the source pages are inconsistent
// about which form carries the canonical meaning.
type RawField struct {
	Key   string
	Value string
}

// Extraction is the raw output of parsing one product page. Empty title or
// zero fields is a complete extraction, not an error; validation belongs to
// the ingestion pipeline.
type Extraction struct {
	Title     string
	ImageURLs []string
	RawFields []RawField
}

type ExtractorConfig struct {
	UserAgent    string
	FetchTimeout time.Duration
}

func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		FetchTimeout: 10 * time.Second,
	}
}

// Extractor fetches product pages and pulls title, images and spec rows out
// of them. It has zero control over the page structure and degrades to "no
// fields found" rather than failing on structural drift.
type Extractor struct {
	config ExtractorConfig
	client *http.Client
}

func NewExtractor(config ExtractorConfig) *Extractor {
	return &Extractor{
		config: config,
		client: &http.Client{Timeout: config.FetchTimeout},
	}
}

// Extract fetches pageURL and parses it. It returns an error only when the
// fetch or parse itself fails (network error, non-200, non-HTML body).
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*Extraction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	// The source site rejects or alters responses for unrecognized clients.
	req.Header.Set("User-Agent", e.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	return e.parse(doc), nil
}

func (e *Extractor) parse(doc *goquery.Document) *Extraction {
	result := &Extraction{}

	result.Title = strings.TrimSpace(doc.Find(".specs-phone-name-title").Text())

	// Primary photo first, then the thumbnail gallery, in document order.
	// No dedup: repeated fetches are wasteful but not incorrect.
	doc.Find(".specs-photo-main img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok && src != "" {
			result.ImageURLs = append(result.ImageURLs, src)
		}
	})
	doc.Find(".article-thumbnails a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && href != "" {
			result.ImageURLs = append(result.ImageURLs, href)
		}
	})

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		category := strings.TrimSpace(table.Find("th").First().Text())
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			label := strings.TrimSpace(row.Find(".ttl").Text())
			value := strings.TrimSpace(row.Find(".nfo").Text())
			if label == "" || value == "" {
				return
			}
			bare := strings.ToLower(label)
			result.RawFields = append(result.RawFields,
				RawField{Key: bare, Value: value},
				RawField{Key: strings.ToLower(category) + ": " + bare, Value: value},
			)
		})
	})

	return result
}
