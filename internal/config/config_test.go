package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, ProviderOllama, s.LLMProvider)
	assert.Equal(t, 8090, s.Port)
	assert.Equal(t, "duckduckgo", s.WebSearchTool)
	assert.Equal(t, "deepseek-chat", s.DeepSeekTeamModelID)
	assert.Equal(t, "deepseek-r1-distill-llama-70b", s.GroqTeamModelID)
}

func TestLoadNormalizesProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", " GROQ ")
	t.Setenv("GROQ_TEAM_MODEL_ID", "llama-3.3-70b-versatile")

	s, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, ProviderGroq, s.LLMProvider)
	assert.Equal(t, "llama-3.3-70b-versatile", s.TeamModelID())
	assert.Equal(t, "qwen-2.5-32b", s.AgentModelID())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr string
	}{
		{"ollama needs no key", Settings{LLMProvider: ProviderOllama}, ""},
		{"deepseek with key", Settings{LLMProvider: ProviderDeepSeek, DeepSeekAPIKey: "sk-x"}, ""},
		{"deepseek without key", Settings{LLMProvider: ProviderDeepSeek}, "DEEPSEEK_API_KEY"},
		{"groq without key", Settings{LLMProvider: ProviderGroq}, "GROQ_API_KEY"},
		{"openrouter without key", Settings{LLMProvider: ProviderOpenRouter}, "OPENROUTER_API_KEY"},
		{"unknown provider", Settings{LLMProvider: "anthropic"}, "unsupported LLM_PROVIDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestHostingConfigEnviron(t *testing.T) {
	// The projection is total: every variable appears for every input.
	h := HostingConfig{LLMProvider: "groq", GroqAPIKey: "K"}

	env := h.Environ()
	assert.Equal(t, map[string]string{
		"LLM_PROVIDER":       "groq",
		"DEEPSEEK_API_KEY":   "",
		"GROQ_API_KEY":       "K",
		"OPENROUTER_API_KEY": "",
		"EXA_API_KEY":        "",
	}, env)
}

func TestHostingConfigValidate(t *testing.T) {
	assert.NoError(t, HostingConfig{LLMProvider: "groq", GroqAPIKey: "K"}.Validate())
	assert.NoError(t, HostingConfig{LLMProvider: "ollama"}.Validate())
	assert.Error(t, HostingConfig{LLMProvider: "deepseek"}.Validate())
}

func TestDescriptorSchema(t *testing.T) {
	data, err := DescriptorSchema()
	require.NoError(t, err)

	doc := string(data)
	for _, want := range []string{"llmProvider", "deepseekApiKey", "groqApiKey", "openrouterApiKey", "exaApiKey", "deepseek"} {
		assert.Contains(t, doc, want)
	}
}
