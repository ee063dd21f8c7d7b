package team

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/config"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/providers"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/tools"
)

// FromSettings assembles the sequential thinking team for the
// configured provider: coordinator on the team model, specialists on
// the agent model, and the configured web search backend for the
// Researcher.
func FromSettings(settings *config.Settings, logger *logrus.Entry) (*Team, error) {
	if settings.DebugAgents {
		logger.Logger.SetLevel(logrus.DebugLevel)
	}

	factory := providers.NewFactory(settings)

	coordinator, err := factory.CreateTeamProvider()
	if err != nil {
		return nil, fmt.Errorf("create coordinator provider: %w", err)
	}
	agentProvider, err := factory.CreateAgentProvider()
	if err != nil {
		return nil, fmt.Errorf("create agent provider: %w", err)
	}

	var searchTool tools.Tool
	if settings.WebSearchTool == "exa" {
		searchTool = tools.NewExaSearchTool(settings.ExaAPIKey)
	} else {
		searchTool = tools.NewDuckDuckGoSearchTool()
	}

	members := DefaultRoster(RosterConfig{
		AgentModel: settings.AgentModelID(),
		Provider:   agentProvider,
		SearchTool: searchTool,
	})

	return New(Config{
		Name:             "SequentialThinkingTeam",
		Coordinator:      coordinator,
		CoordinatorModel: settings.TeamModelID(),
		Members:          members,
		Logger:           logger,
	}), nil
}
