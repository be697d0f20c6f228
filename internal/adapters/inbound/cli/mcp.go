package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	mcpadapter "github.com/pagelens/pagelens/internal/adapters/inbound/mcp"
)

func newMCPCmd(logger func() zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pagelens MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(logger))
	return cmd
}

func newMCPServeCmd(logger func() zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the pagelens MCP server (stdio)",
		Long:  "Start the pagelens MCP server using stdio transport so AI assistants can audit pages on demand.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewPagelensMCPServer(logger())
			return server.ServeStdio(s)
		},
	}
}
