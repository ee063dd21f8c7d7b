package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const duckduckgoURL = "https://html.duckduckgo.com/html/"

// DuckDuckGoSearchTool searches the web by scraping the DuckDuckGo HTML
// endpoint. It needs no API key and is the default search backend.
type DuckDuckGoSearchTool struct {
	BaseTool
	baseURL string
	client  *http.Client
}

func NewDuckDuckGoSearchTool() *DuckDuckGoSearchTool {
	return &DuckDuckGoSearchTool{
		BaseTool: NewBaseTool(
			"web_search",
			"Search the web using DuckDuckGo. Returns titles, URLs, and snippets.",
			searchParams(),
		),
		baseURL: duckduckgoURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *DuckDuckGoSearchTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	query, count, err := searchArgs(args)
	if err != nil {
		return nil, err
	}

	form := url.Values{"q": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := t.client.Do(req)
	if err != nil {
		return map[string]interface{}{
			"error":   fmt.Sprintf("search request failed: %v", err),
			"success": false,
		}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return map[string]interface{}{
			"error":   fmt.Sprintf("search failed with status %d", resp.StatusCode),
			"success": false,
		}, nil
	}

	results, err := ParseDuckDuckGoResults(resp.Body, count)
	if err != nil {
		return map[string]interface{}{
			"error":   fmt.Sprintf("failed to parse results: %v", err),
			"success": false,
		}, nil
	}

	return map[string]interface{}{
		"query":   query,
		"results": results,
		"count":   len(results),
		"success": true,
	}, nil
}

// ParseDuckDuckGoResults extracts search results from the DuckDuckGo
// HTML results page, at most max entries.
func ParseDuckDuckGoResults(body io.Reader, max int) ([]SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	doc.Find("div.result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		link := s.Find("a.result__a").First()
		href, _ := link.Attr("href")
		title := strings.TrimSpace(link.Text())
		snippet := strings.TrimSpace(s.Find(".result__snippet").First().Text())

		if title == "" || href == "" {
			return true
		}

		results = append(results, SearchResult{
			Title:   title,
			URL:     cleanDuckDuckGoURL(href),
			Snippet: snippet,
		})
		return len(results) < max
	})

	return results, nil
}

// cleanDuckDuckGoURL unwraps the redirect links DuckDuckGo uses on its
// HTML endpoint (//duckduckgo.com/l/?uddg=<encoded>).
func cleanDuckDuckGoURL(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if uddg := parsed.Query().Get("uddg"); uddg != "" {
		if target, err := url.QueryUnescape(uddg); err == nil {
			return target
		}
	}
	if parsed.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
