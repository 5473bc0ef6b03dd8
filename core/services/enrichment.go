// ABOUTME: Content enrichment fills a record's empty text fields from its URL
// ABOUTME: Scrapes Open Graph tags and readable article text before validation

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"content-review-api/core/domain"
	"content-review-api/core/interfaces"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/gocolly/colly"
)

const (
	collyUserAgent = "ContentReviewAPI/1.0 (+enrichment)"
	fetchTimeout   = 15 * time.Second
	enrichCacheTTL = 24 * time.Hour

	// maxTextLength bounds the extracted article text stored on a record
	maxTextLength = 5000
)

// EnrichmentService fetches page content for records that carry only a URL
type EnrichmentService struct {
	deps interfaces.Dependencies
}

// NewEnrichmentService creates a new enrichment service
func NewEnrichmentService(deps interfaces.Dependencies) *EnrichmentService {
	return &EnrichmentService{deps: deps}
}

// enrichedContent is the cached extraction result for one URL
type enrichedContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Text        string `json:"text"`
}

// EnrichRecord fills the record's empty Title, Description, and Text fields
// from the page at its URL. Records that already have text, or have no URL,
// are left untouched. Failures are returned to the caller but are never
// fatal: the record is then validated with whatever content it has.
func (s *EnrichmentService) EnrichRecord(ctx context.Context, record *domain.Record) error {
	if record.URL == "" || record.HasText() {
		return nil
	}

	content, err := s.extract(ctx, record.URL)
	if err != nil {
		return err
	}

	if record.Title == "" {
		record.Title = content.Title
	}
	if record.Description == "" {
		record.Description = content.Description
	}
	if record.Text == "" {
		record.Text = content.Text
	}
	return nil
}

func (s *EnrichmentService) extract(ctx context.Context, pageURL string) (*enrichedContent, error) {
	cacheKey := "enrich:" + pageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached enrichedContent
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	body, err := fetchPage(pageURL)
	if err != nil {
		return nil, err
	}

	content := parsePage(body, pageURL)

	if s.deps.Cache != nil {
		if data, err := json.Marshal(content); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, enrichCacheTTL)
		}
	}
	return content, nil
}

// fetchPage downloads the raw page body
func fetchPage(pageURL string) ([]byte, error) {
	c := colly.NewCollector(colly.UserAgent(collyUserAgent))
	c.SetRequestTimeout(fetchTimeout)

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.New("empty page body")
	}
	return body, nil
}

// parsePage extracts title, description, and readable text from raw HTML.
// Open Graph tags win over plain meta tags and the <title> element.
func parsePage(body []byte, pageURL string) *enrichedContent {
	content := &enrichedContent{}

	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		content.Title = firstNonEmpty(
			metaContent(doc, `meta[property="og:title"]`),
			strings.TrimSpace(doc.Find("title").First().Text()),
		)
		content.Description = firstNonEmpty(
			metaContent(doc, `meta[property="og:description"]`),
			metaContent(doc, `meta[name="description"]`),
		)
	}

	if parsed, err := url.Parse(pageURL); err == nil {
		if article, err := readability.FromReader(bytes.NewReader(body), parsed); err == nil {
			text := collapseWhitespace(article.TextContent)
			if len(text) > maxTextLength {
				text = text[:maxTextLength]
			}
			content.Text = text
			if content.Title == "" {
				content.Title = article.Title
			}
			if content.Description == "" {
				content.Description = article.Excerpt
			}
		}
	}

	return content
}

func metaContent(doc *goquery.Document, selector string) string {
	value, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
