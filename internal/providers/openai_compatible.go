package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/ai"
)

// Config holds the per-provider connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // Optional custom base URL
}

// OpenAICompatibleProvider handles all OpenAI-compatible chat APIs.
// DeepSeek, Groq, OpenRouter and Ollama all speak this wire format.
type OpenAICompatibleProvider struct {
	client *openai.Client
	config Config
	name   string
}

// NewOpenAICompatibleProvider creates a provider for any OpenAI-compatible API.
func NewOpenAICompatibleProvider(name string, config Config) (*OpenAICompatibleProvider, error) {
	if config.APIKey == "" && RequiresAPIKey(name) {
		return nil, fmt.Errorf("API key required for %s", name)
	}

	if config.BaseURL == "" {
		config.BaseURL = GetDefaultBaseURL(name)
		if config.BaseURL == "" {
			return nil, fmt.Errorf("no base URL known for provider %s", name)
		}
	}

	if config.Model == "" {
		config.Model = GetDefaultAgentModel(name)
	}

	// go-openai insists on a non-empty token even for keyless endpoints.
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = "unused"
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = config.BaseURL

	return &OpenAICompatibleProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
		name:   name,
	}, nil
}

func (p *OpenAICompatibleProvider) Name() string {
	return p.name
}

func (p *OpenAICompatibleProvider) SupportsTools() bool {
	return true
}

// Chat implements the AI provider interface.
func (p *OpenAICompatibleProvider) Chat(ctx context.Context, req ai.ChatRequest) (*ai.ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	openaiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	for _, tool := range req.Tools {
		openaiReq.Tools = append(openaiReq.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openaiReq)
	if err != nil {
		return nil, fmt.Errorf("%s chat completion: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s returned no choices", p.name)
	}

	choice := resp.Choices[0]
	out := &ai.ChatResponse{
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
	}

	for _, tc := range choice.Message.ToolCalls {
		args := map[string]interface{}{}
		if tc.Function.Arguments != "" {
			// Malformed arguments become an empty map; the tool reports
			// the missing parameter itself.
			_ = json.Unmarshal([]byte(tc.Function.Arguments), &args)
		}
		out.ToolCalls = append(out.ToolCalls, ai.ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: args,
		})
	}

	return out, nil
}

func toOpenAIMessages(messages []ai.Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			argsJSON, err := json.Marshal(tc.Args)
			if err != nil {
				argsJSON = []byte("{}")
			}
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: string(argsJSON),
				},
			})
		}
		result = append(result, msg)
	}
	return result
}
