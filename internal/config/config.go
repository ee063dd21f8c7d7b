// Package config holds runtime settings for the sequential thinking
// server. Settings come from the process environment (optionally seeded
// from a .env file), with an optional YAML overlay for model overrides.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Provider identifiers accepted in LLM_PROVIDER.
const (
	ProviderDeepSeek   = "deepseek"
	ProviderGroq       = "groq"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

// ValidProviders lists every supported provider identifier.
var ValidProviders = []string{ProviderDeepSeek, ProviderGroq, ProviderOpenRouter, ProviderOllama}

// Settings is the full runtime configuration of the server.
type Settings struct {
	LLMProvider string `env:"LLM_PROVIDER, default=ollama" yaml:"llm_provider"`

	DeepSeekAPIKey   string `env:"DEEPSEEK_API_KEY" yaml:"-"`
	GroqAPIKey       string `env:"GROQ_API_KEY" yaml:"-"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY" yaml:"-"`
	ExaAPIKey        string `env:"EXA_API_KEY" yaml:"-"`

	DeepSeekTeamModelID    string `env:"DEEPSEEK_TEAM_MODEL_ID, default=deepseek-chat" yaml:"deepseek_team_model_id"`
	DeepSeekAgentModelID   string `env:"DEEPSEEK_AGENT_MODEL_ID, default=deepseek-chat" yaml:"deepseek_agent_model_id"`
	GroqTeamModelID        string `env:"GROQ_TEAM_MODEL_ID, default=deepseek-r1-distill-llama-70b" yaml:"groq_team_model_id"`
	GroqAgentModelID       string `env:"GROQ_AGENT_MODEL_ID, default=qwen-2.5-32b" yaml:"groq_agent_model_id"`
	OpenRouterTeamModelID  string `env:"OPENROUTER_TEAM_MODEL_ID, default=deepseek/deepseek-chat-v3-0324" yaml:"openrouter_team_model_id"`
	OpenRouterAgentModelID string `env:"OPENROUTER_AGENT_MODEL_ID, default=deepseek/deepseek-r1" yaml:"openrouter_agent_model_id"`
	OllamaTeamModelID      string `env:"OLLAMA_TEAM_MODEL_ID, default=hf-tool-thinking-qween3-14b-32k:latest" yaml:"ollama_team_model_id"`
	OllamaAgentModelID     string `env:"OLLAMA_AGENT_MODEL_ID, default=hf-tool-thinking-qween3-14b-32k:latest" yaml:"ollama_agent_model_id"`

	DeepSeekBaseURL   string `env:"DEEPSEEK_BASE_URL" yaml:"deepseek_base_url"`
	GroqBaseURL       string `env:"GROQ_BASE_URL" yaml:"groq_base_url"`
	OpenRouterBaseURL string `env:"OPENROUTER_BASE_URL" yaml:"openrouter_base_url"`
	OllamaHost        string `env:"OLLAMA_HOST" yaml:"ollama_host"`

	Port          int    `env:"PORT, default=8090" yaml:"port"`
	Debug         bool   `env:"DEBUG" yaml:"debug"`
	DebugAgents   bool   `env:"DEBUG_AGENTS" yaml:"debug_agents"`
	LogFolder     string `env:"LOG_FOLDER, default=./hf-mcp-sequential-thinking/logs" yaml:"log_folder"`
	WebSearchTool string `env:"WEB_SEARCH_TOOL, default=duckduckgo" yaml:"web_search_tool"`
}

// Load builds Settings from a .env file (if present) and the process
// environment. A YAML overlay at path, when non-empty and existing,
// fills values the environment left at their defaults.
func Load(ctx context.Context, path string) (*Settings, error) {
	// Missing .env is fine; the platform may inject variables directly.
	_ = godotenv.Load()

	var s Settings
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	s.LLMProvider = strings.ToLower(strings.TrimSpace(s.LLMProvider))
	s.WebSearchTool = strings.ToLower(strings.TrimSpace(s.WebSearchTool))

	if path != "" {
		if err := s.applyFile(path); err != nil {
			return nil, err
		}
	}

	return &s, nil
}

// applyFile overlays model and host overrides from a YAML file. Values
// already set in the environment win.
func (s *Settings) applyFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overlay Settings
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parse config YAML: %w", err)
	}

	if overlay.LLMProvider != "" && os.Getenv("LLM_PROVIDER") == "" {
		s.LLMProvider = strings.ToLower(overlay.LLMProvider)
	}
	apply := func(dst *string, envName, val string) {
		if val != "" && os.Getenv(envName) == "" {
			*dst = val
		}
	}
	apply(&s.DeepSeekTeamModelID, "DEEPSEEK_TEAM_MODEL_ID", overlay.DeepSeekTeamModelID)
	apply(&s.DeepSeekAgentModelID, "DEEPSEEK_AGENT_MODEL_ID", overlay.DeepSeekAgentModelID)
	apply(&s.GroqTeamModelID, "GROQ_TEAM_MODEL_ID", overlay.GroqTeamModelID)
	apply(&s.GroqAgentModelID, "GROQ_AGENT_MODEL_ID", overlay.GroqAgentModelID)
	apply(&s.OpenRouterTeamModelID, "OPENROUTER_TEAM_MODEL_ID", overlay.OpenRouterTeamModelID)
	apply(&s.OpenRouterAgentModelID, "OPENROUTER_AGENT_MODEL_ID", overlay.OpenRouterAgentModelID)
	apply(&s.OllamaTeamModelID, "OLLAMA_TEAM_MODEL_ID", overlay.OllamaTeamModelID)
	apply(&s.OllamaAgentModelID, "OLLAMA_AGENT_MODEL_ID", overlay.OllamaAgentModelID)
	apply(&s.DeepSeekBaseURL, "DEEPSEEK_BASE_URL", overlay.DeepSeekBaseURL)
	apply(&s.GroqBaseURL, "GROQ_BASE_URL", overlay.GroqBaseURL)
	apply(&s.OpenRouterBaseURL, "OPENROUTER_BASE_URL", overlay.OpenRouterBaseURL)
	apply(&s.OllamaHost, "OLLAMA_HOST", overlay.OllamaHost)

	return nil
}

// Save writes the overridable part of the settings to a YAML file.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal config to YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks that the selected provider is known and that its
// credential is present. Ollama runs locally and needs no key.
func (s *Settings) Validate() error {
	switch s.LLMProvider {
	case ProviderDeepSeek:
		if s.DeepSeekAPIKey == "" {
			return fmt.Errorf("provider %s selected but DEEPSEEK_API_KEY is not set", s.LLMProvider)
		}
	case ProviderGroq:
		if s.GroqAPIKey == "" {
			return fmt.Errorf("provider %s selected but GROQ_API_KEY is not set", s.LLMProvider)
		}
	case ProviderOpenRouter:
		if s.OpenRouterAPIKey == "" {
			return fmt.Errorf("provider %s selected but OPENROUTER_API_KEY is not set", s.LLMProvider)
		}
	case ProviderOllama:
		// No credential required.
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %q (valid: %s)", s.LLMProvider, strings.Join(ValidProviders, ", "))
	}
	return nil
}

// APIKey returns the credential for the given provider, empty when the
// provider needs none or the key is unset.
func (s *Settings) APIKey(provider string) string {
	switch provider {
	case ProviderDeepSeek:
		return s.DeepSeekAPIKey
	case ProviderGroq:
		return s.GroqAPIKey
	case ProviderOpenRouter:
		return s.OpenRouterAPIKey
	}
	return ""
}

// TeamModelID returns the coordinator model for the selected provider.
func (s *Settings) TeamModelID() string {
	switch s.LLMProvider {
	case ProviderDeepSeek:
		return s.DeepSeekTeamModelID
	case ProviderGroq:
		return s.GroqTeamModelID
	case ProviderOpenRouter:
		return s.OpenRouterTeamModelID
	default:
		return s.OllamaTeamModelID
	}
}

// AgentModelID returns the specialist model for the selected provider.
func (s *Settings) AgentModelID() string {
	switch s.LLMProvider {
	case ProviderDeepSeek:
		return s.DeepSeekAgentModelID
	case ProviderGroq:
		return s.GroqAgentModelID
	case ProviderOpenRouter:
		return s.OpenRouterAgentModelID
	default:
		return s.OllamaAgentModelID
	}
}

// BaseURL returns the configured base URL override for a provider,
// empty when the built-in default should be used.
func (s *Settings) BaseURL(provider string) string {
	switch provider {
	case ProviderDeepSeek:
		return s.DeepSeekBaseURL
	case ProviderGroq:
		return s.GroqBaseURL
	case ProviderOpenRouter:
		return s.OpenRouterBaseURL
	case ProviderOllama:
		return s.OllamaHost
	}
	return ""
}
