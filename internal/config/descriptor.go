package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// HostingConfig is the operator-facing configuration collected by a
// hosting platform. The platform validates it against the descriptor
// schema and projects it onto environment variables for the launched
// process.
type HostingConfig struct {
	LLMProvider      string `json:"llmProvider" jsonschema:"enum=deepseek,enum=groq,enum=openrouter,enum=ollama,default=deepseek,description=LLM backend used by the thinking team"`
	DeepSeekAPIKey   string `json:"deepseekApiKey" jsonschema:"description=API key for DeepSeek (required when llmProvider is deepseek)"`
	GroqAPIKey       string `json:"groqApiKey,omitempty" jsonschema:"default=,description=API key for Groq"`
	OpenRouterAPIKey string `json:"openrouterApiKey,omitempty" jsonschema:"default=,description=API key for OpenRouter"`
	ExaAPIKey        string `json:"exaApiKey,omitempty" jsonschema:"default=,description=API key for the Exa search capability"`
}

// Environ projects the hosting configuration onto the fixed set of
// environment variables consumed at startup. The projection is total:
// every variable is present for every input, unset keys as empty
// strings.
func (h HostingConfig) Environ() map[string]string {
	return map[string]string{
		"LLM_PROVIDER":       h.LLMProvider,
		"DEEPSEEK_API_KEY":   h.DeepSeekAPIKey,
		"GROQ_API_KEY":       h.GroqAPIKey,
		"OPENROUTER_API_KEY": h.OpenRouterAPIKey,
		"EXA_API_KEY":        h.ExaAPIKey,
	}
}

// Validate applies the descriptor's conditional-credential rule: the
// selected provider must have its key, except ollama.
func (h HostingConfig) Validate() error {
	s := Settings{
		LLMProvider:      h.LLMProvider,
		DeepSeekAPIKey:   h.DeepSeekAPIKey,
		GroqAPIKey:       h.GroqAPIKey,
		OpenRouterAPIKey: h.OpenRouterAPIKey,
	}
	return s.Validate()
}

// DescriptorSchema renders the hosting configuration descriptor as an
// indented JSON Schema document.
func DescriptorSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	schema := r.Reflect(&HostingConfig{})
	schema.Title = "Sequential Thinking MCP Server configuration"
	schema.Description = "Values collected by the hosting platform and injected as environment variables."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal descriptor schema: %w", err)
	}
	return data, nil
}
