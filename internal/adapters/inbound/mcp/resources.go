package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configloader "github.com/pagelens/pagelens/internal/adapters/outbound/config"
	"github.com/pagelens/pagelens/internal/domain"
)

// registerResources registers all pagelens MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// 1. pagelens://weights - the scoring weight tables
	s.AddResource(
		mcplib.NewResource(
			"pagelens://weights",
			"Scoring Weights",
			mcplib.WithResourceDescription("Category and sub-metric weight tables used for scoring"),
			mcplib.WithMIMEType("application/json"),
		),
		handleWeightsResource(),
	)

	// 2. pagelens://config - effective run configuration
	s.AddResource(
		mcplib.NewResource(
			"pagelens://config",
			"Run Configuration",
			mcplib.WithResourceDescription("Effective configuration: budgets, timeouts and toggles"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(),
	)
}

func handleWeightsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(map[string]any{
			"categories":  domain.CategoryWeights,
			"sub_metrics": domain.SubWeights,
		}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling weights: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "pagelens://weights",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleConfigResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configloader.New().Load(".")
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "pagelens://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
