package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/highfeature/hf-mcp-server-mas-sequential-thinking/internal/server"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print server name and version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", server.ServerName, server.ServerVersion)
		},
	}
}
