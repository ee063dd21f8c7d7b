package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const exaSearchURL = "https://api.exa.ai/search"

// ExaSearchTool searches the web using the Exa API.
type ExaSearchTool struct {
	BaseTool
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewExaSearchTool creates a web search tool backed by Exa.
func NewExaSearchTool(apiKey string) *ExaSearchTool {
	return &ExaSearchTool{
		BaseTool: NewBaseTool(
			"web_search",
			"Search the web using the Exa API. Returns titles, URLs, and snippets.",
			searchParams(),
		),
		apiKey:  apiKey,
		baseURL: exaSearchURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func searchParams() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query",
			},
			"count": map[string]interface{}{
				"type":        "integer",
				"description": "Number of results (1-10, default 5)",
			},
		},
		"required": []string{"query"},
	}
}

// SearchResult is one entry returned by a web search tool.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

func (t *ExaSearchTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	query, count, err := searchArgs(args)
	if err != nil {
		return nil, err
	}

	if t.apiKey == "" {
		return map[string]interface{}{
			"error":   "Exa API key not configured",
			"hint":    "Set EXA_API_KEY or switch WEB_SEARCH_TOOL to duckduckgo",
			"success": false,
		}, nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"query":      query,
		"numResults": count,
		"contents": map[string]interface{}{
			"text": map[string]interface{}{"maxCharacters": 500},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode exa request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create exa request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return map[string]interface{}{
			"error":   fmt.Sprintf("search request failed: %v", err),
			"success": false,
		}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return map[string]interface{}{
			"error":   fmt.Sprintf("search failed with status %d: %s", resp.StatusCode, string(body)),
			"success": false,
		}, nil
	}

	var exaResp struct {
		Results []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
			Text  string `json:"text"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&exaResp); err != nil {
		return map[string]interface{}{
			"error":   fmt.Sprintf("failed to parse response: %v", err),
			"success": false,
		}, nil
	}

	results := make([]SearchResult, 0, len(exaResp.Results))
	for _, r := range exaResp.Results {
		results = append(results, SearchResult{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: r.Text,
		})
	}

	return map[string]interface{}{
		"query":   query,
		"results": results,
		"count":   len(results),
		"success": true,
	}, nil
}

func searchArgs(args map[string]interface{}) (string, int, error) {
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return "", 0, fmt.Errorf("query parameter is required")
	}

	count := 5
	if c, ok := args["count"].(float64); ok {
		count = int(c)
		if count < 1 {
			count = 1
		}
		if count > 10 {
			count = 10
		}
	}
	return query, count, nil
}
