package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
)

// WebFetchTool fetches a URL and extracts its readable content, so the
// Researcher can follow up on search results.
type WebFetchTool struct {
	BaseTool
	client *http.Client
}

func NewWebFetchTool() *WebFetchTool {
	params := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "URL to fetch (http/https only)",
			},
			"max_chars": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum characters to return (default 20000)",
			},
		},
		"required": []string{"url"},
	}

	return &WebFetchTool{
		BaseTool: NewBaseTool(
			"web_fetch",
			"Fetch a URL and extract its readable text content.",
			params,
		),
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

func (t *WebFetchTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	rawURL, ok := args["url"].(string)
	if !ok || rawURL == "" {
		return nil, fmt.Errorf("url parameter is required")
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fetchError(rawURL, fmt.Sprintf("invalid URL: %v", err)), nil
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fetchError(rawURL, "only http/https URLs are supported"), nil
	}
	if isPrivateHost(parsedURL.Hostname()) {
		return fetchError(rawURL, "private/localhost URLs are blocked"), nil
	}

	maxChars := 20000
	if mc, ok := args["max_chars"].(float64); ok && mc > 0 {
		maxChars = int(mc)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fetchError(rawURL, fmt.Sprintf("failed to create request: %v", err)), nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := t.client.Do(req)
	if err != nil {
		return fetchError(rawURL, fmt.Sprintf("fetch failed: %v", err)), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fetchError(rawURL, fmt.Sprintf("HTTP %d", resp.StatusCode)), nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return fetchError(rawURL, fmt.Sprintf("failed to read response: %v", err)), nil
	}

	contentType := resp.Header.Get("Content-Type")
	var content, title string

	switch {
	case strings.Contains(contentType, "text/html"), strings.Contains(contentType, "application/xhtml"):
		article, err := readability.FromReader(strings.NewReader(string(body)), parsedURL)
		if err != nil || article.Node == nil {
			content = extractTextFromHTML(string(body))
			title = extractTitleFromHTML(string(body))
		} else {
			title = article.Title()
			var buf strings.Builder
			article.RenderText(&buf)
			content = buf.String()
		}
	case strings.Contains(contentType, "text/"), strings.Contains(contentType, "application/json"):
		content = string(body)
	default:
		return fetchError(rawURL, fmt.Sprintf("unsupported content type: %s", contentType)), nil
	}

	if len(content) > maxChars {
		content = content[:maxChars] + "\n... (truncated)"
	}

	return map[string]interface{}{
		"url":     rawURL,
		"title":   title,
		"content": content,
		"length":  len(content),
		"success": true,
	}, nil
}

func fetchError(url, msg string) map[string]interface{} {
	return map[string]interface{}{
		"url":     url,
		"error":   msg,
		"success": false,
	}
}

func isPrivateHost(host string) bool {
	host = strings.ToLower(host)
	return host == "localhost" || host == "127.0.0.1" || strings.HasPrefix(host, "192.168.") ||
		strings.HasPrefix(host, "10.") || strings.HasPrefix(host, "172.")
}

// extractTextFromHTML extracts plain text from HTML
func extractTextFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style, noscript").Remove()
	return strings.TrimSpace(doc.Text())
}

// extractTitleFromHTML extracts the document title from HTML
func extractTitleFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
