package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/spf13/cobra"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check provider selection and credentials",
		RunE:  runConfigValidate,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "descriptor",
		Short: "Print the hosting configuration JSON Schema",
		RunE:  runConfigDescriptor,
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// API keys carry `yaml:"-"` and never appear in this dump.
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	fmt.Printf("Configuration OK (provider: %s, team model: %s, agent model: %s)\n",
		settings.LLMProvider, settings.TeamModelID(), settings.AgentModelID())
	return nil
}

func runConfigDescriptor(cmd *cobra.Command, args []string) error {
	data, err := config.DescriptorSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
