package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/ai"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/config"
)

func TestDefaults(t *testing.T) {
	tests := []struct {
		provider  string
		teamModel string
		baseURL   string
		needsKey  bool
	}{
		{config.ProviderDeepSeek, "deepseek-chat", "https://api.deepseek.com/v1", true},
		{config.ProviderGroq, "deepseek-r1-distill-llama-70b", "https://api.groq.com/openai/v1", true},
		{config.ProviderOpenRouter, "deepseek/deepseek-chat-v3-0324", "https://openrouter.ai/api/v1", true},
		{config.ProviderOllama, "hf-tool-thinking-qween3-14b-32k:latest", "http://localhost:11434/v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			if got := GetDefaultTeamModel(tt.provider); got != tt.teamModel {
				t.Errorf("GetDefaultTeamModel = %q, want %q", got, tt.teamModel)
			}
			if got := GetDefaultBaseURL(tt.provider); got != tt.baseURL {
				t.Errorf("GetDefaultBaseURL = %q, want %q", got, tt.baseURL)
			}
			if got := RequiresAPIKey(tt.provider); got != tt.needsKey {
				t.Errorf("RequiresAPIKey = %t, want %t", got, tt.needsKey)
			}
		})
	}
}

func TestFactoryCreate(t *testing.T) {
	settings := &config.Settings{
		LLMProvider:          config.ProviderOllama,
		OllamaTeamModelID:    "test-team",
		OllamaAgentModelID:   "test-agent",
		GroqTeamModelID:      "groq-team",
		DeepSeekTeamModelID:  "deepseek-chat",
		DeepSeekAgentModelID: "deepseek-chat",
	}
	factory := NewFactory(settings)

	t.Run("ollama needs no key", func(t *testing.T) {
		p, err := factory.Create(config.ProviderOllama, "")
		if err != nil {
			t.Fatalf("Create(ollama) error: %v", err)
		}
		if p.Name() != config.ProviderOllama {
			t.Errorf("Name() = %q", p.Name())
		}
	})

	t.Run("missing key fails", func(t *testing.T) {
		_, err := factory.Create(config.ProviderGroq, "")
		if err == nil || !strings.Contains(err.Error(), "GROQ_API_KEY") {
			t.Fatalf("Create(groq) error = %v, want missing-key error", err)
		}
	})

	t.Run("unknown provider fails", func(t *testing.T) {
		_, err := factory.Create("anthropic", "")
		if err == nil || !strings.Contains(err.Error(), "unknown provider") {
			t.Fatalf("Create(anthropic) error = %v, want unknown-provider error", err)
		}
	})

	t.Run("empty name uses configured provider", func(t *testing.T) {
		p, err := factory.Create("", "")
		if err != nil {
			t.Fatalf("Create(\"\") error: %v", err)
		}
		if p.Name() != config.ProviderOllama {
			t.Errorf("Name() = %q, want ollama", p.Name())
		}
	})

	t.Run("mock provider", func(t *testing.T) {
		p, err := factory.Create("mock", "")
		if err != nil {
			t.Fatalf("Create(mock) error: %v", err)
		}
		if _, ok := p.(*MockProvider); !ok {
			t.Errorf("Create(mock) = %T, want *MockProvider", p)
		}
	})
}

func TestMockProviderQueueAndEcho(t *testing.T) {
	p := NewMockProvider()
	p.Queue(ai.ChatResponse{Content: "canned"})

	resp, err := p.Chat(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if resp.Content != "canned" {
		t.Errorf("Content = %q, want queued response", resp.Content)
	}

	resp, err = p.Chat(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: "user", Content: "hello again"}},
	})
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if !strings.Contains(resp.Content, "hello again") {
		t.Errorf("Content = %q, want echo of last user message", resp.Content)
	}

	if got := len(p.Requests()); got != 2 {
		t.Errorf("Requests() = %d entries, want 2", got)
	}
}
