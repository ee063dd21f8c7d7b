// Package providers contains LLM provider implementations and their
// default configuration.
package providers

import "strings"

// ProviderDefaults contains default configuration for each provider.
type ProviderDefaults struct {
	TeamModel  string // Default model for the team coordinator
	AgentModel string // Default model for specialist agents
	BaseURL    string // Default API base URL
}

// Defaults maps provider names to their default configuration.
var Defaults = map[string]ProviderDefaults{
	"deepseek": {
		TeamModel:  "deepseek-chat",
		AgentModel: "deepseek-chat",
		BaseURL:    "https://api.deepseek.com/v1",
	},
	"groq": {
		TeamModel:  "deepseek-r1-distill-llama-70b",
		AgentModel: "qwen-2.5-32b",
		BaseURL:    "https://api.groq.com/openai/v1",
	},
	"openrouter": {
		TeamModel:  "deepseek/deepseek-chat-v3-0324",
		AgentModel: "deepseek/deepseek-r1",
		BaseURL:    "https://openrouter.ai/api/v1",
	},
	"ollama": {
		TeamModel:  "hf-tool-thinking-qween3-14b-32k:latest",
		AgentModel: "hf-tool-thinking-qween3-14b-32k:latest",
		BaseURL:    "http://localhost:11434/v1",
	},
}

// DefaultProvider is used when no provider is specified.
const DefaultProvider = "ollama"

// GetDefaultTeamModel returns the default coordinator model for a provider.
func GetDefaultTeamModel(provider string) string {
	provider = strings.ToLower(provider)
	if def, ok := Defaults[provider]; ok {
		return def.TeamModel
	}
	return Defaults[DefaultProvider].TeamModel
}

// GetDefaultAgentModel returns the default specialist model for a provider.
func GetDefaultAgentModel(provider string) string {
	provider = strings.ToLower(provider)
	if def, ok := Defaults[provider]; ok {
		return def.AgentModel
	}
	return Defaults[DefaultProvider].AgentModel
}

// GetDefaultBaseURL returns the default API base URL for a provider.
func GetDefaultBaseURL(provider string) string {
	provider = strings.ToLower(provider)
	if def, ok := Defaults[provider]; ok {
		return def.BaseURL
	}
	return ""
}

// RequiresAPIKey reports whether a provider needs a credential. Ollama
// talks to a local daemon.
func RequiresAPIKey(provider string) bool {
	return strings.ToLower(provider) != "ollama"
}
