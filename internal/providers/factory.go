package providers

import (
	"fmt"
	"strings"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/ai"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/config"
)

// Factory creates AI providers based on the runtime settings.
type Factory struct {
	settings *config.Settings
}

func NewFactory(settings *config.Settings) *Factory {
	return &Factory{settings: settings}
}

// Create builds a provider for the given name with the given model. An
// empty name selects the configured provider; an empty model selects
// the provider's agent model.
func (f *Factory) Create(name, model string) (ai.Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = f.settings.LLMProvider
	}

	switch name {
	case config.ProviderDeepSeek, config.ProviderGroq, config.ProviderOpenRouter, config.ProviderOllama:
		apiKey := f.settings.APIKey(name)
		if apiKey == "" && RequiresAPIKey(name) {
			return nil, fmt.Errorf("%s API key not found. Set %s_API_KEY", name, strings.ToUpper(name))
		}
		if model == "" {
			model = GetDefaultAgentModel(name)
		}
		return NewOpenAICompatibleProvider(name, Config{
			APIKey:  apiKey,
			Model:   model,
			BaseURL: f.settings.BaseURL(name),
		})

	case "mock":
		return NewMockProvider(), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s. Available: %s",
			name, strings.Join(config.ValidProviders, ", "))
	}
}

// CreateTeamProvider builds the provider used by the team coordinator.
func (f *Factory) CreateTeamProvider() (ai.Provider, error) {
	return f.Create(f.settings.LLMProvider, f.settings.TeamModelID())
}

// CreateAgentProvider builds the provider used by specialist agents.
func (f *Factory) CreateAgentProvider() (ai.Provider, error) {
	return f.Create(f.settings.LLMProvider, f.settings.AgentModelID())
}
