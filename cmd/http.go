package cmd

import (
	"github.com/spf13/cobra"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/server"
)

func newHTTPCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the MCP protocol over streamable HTTP",
		Long: `Runs the web surface: service info at /, /health-check, Prometheus
metrics at /metrics, and the MCP streamable HTTP transport mounted at
/mcp-server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mcpServer, settings, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			// Fail fast on bad provider setup instead of on the first request.
			if err := mcpServer.Processor().Warm(); err != nil {
				return err
			}

			if port == 0 {
				port = settings.Port
			}
			return server.NewHTTP(mcpServer, port, log).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (defaults to PORT, 8090)")
	return cmd
}
