package cmd

import (
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP protocol on stdio (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	mcpServer, _, _, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	return mcpServer.ServeStdio()
}
