// Package cmd wires the command line interface of the sequential
// thinking MCP server.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/config"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/logging"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/server"
	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/team"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sequential-thinking",
	Short: "Multi-agent sequential thinking MCP server",
	Long: `An MCP server exposing a 'sequentialthinking' tool backed by a
multi-agent team in coordinate mode. A Coordinator delegates each
thought to specialists (Planner, Researcher, Analyzer, Critic,
Synthesizer) and synthesizes their outputs.`,
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional YAML config overlay")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHTTPCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// bootstrap loads settings, configures logging and assembles the MCP
// server. Shared by the stdio and HTTP commands.
func bootstrap(cmd *cobra.Command) (*server.MCP, *config.Settings, *logrus.Entry, error) {
	settings, err := config.Load(cmd.Context(), configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := logging.Setup(settings.Debug, settings.LogFolder)
	log := logging.Component(logger, "server")

	log.Infof("Sequential Thinking Server starting (provider: %s, team model: %s, agent model: %s)",
		settings.LLMProvider, settings.TeamModelID(), settings.AgentModelID())

	if err := settings.Validate(); err != nil {
		return nil, nil, nil, err
	}

	processor := server.NewProcessor(func() (server.Engine, error) {
		return team.FromSettings(settings, logging.Component(logger, "team"))
	}, logging.Component(logger, "processor"))

	return server.NewMCP(processor, log), settings, log, nil
}
