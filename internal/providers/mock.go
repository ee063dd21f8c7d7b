package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/ai"
)

// MockProvider is a deterministic provider for tests. Responses can be
// queued; when the queue is empty it echoes the last user message.
type MockProvider struct {
	mu        sync.Mutex
	responses []ai.ChatResponse
	requests  []ai.ChatRequest
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Queue appends a canned response returned by the next Chat call.
func (p *MockProvider) Queue(resp ai.ChatResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses = append(p.responses, resp)
}

// Requests returns every request seen so far.
func (p *MockProvider) Requests() []ai.ChatRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ai.ChatRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

func (p *MockProvider) Name() string {
	return "mock"
}

func (p *MockProvider) SupportsTools() bool {
	return true
}

func (p *MockProvider) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)

	if len(p.responses) > 0 {
		resp := p.responses[0]
		p.responses = p.responses[1:]
		return &resp, nil
	}

	last := ""
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			last = req.Messages[i].Content
			break
		}
	}
	return &ai.ChatResponse{
		Content:      fmt.Sprintf("mock response to: %s", last),
		FinishReason: "stop",
	}, nil
}
