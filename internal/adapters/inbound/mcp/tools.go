package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/pagelens/pagelens/internal/adapters/outbound/browser"
	configloader "github.com/pagelens/pagelens/internal/adapters/outbound/config"
	"github.com/pagelens/pagelens/internal/adapters/outbound/fetch"
	"github.com/pagelens/pagelens/internal/application"
	"github.com/pagelens/pagelens/internal/domain"
	"github.com/pagelens/pagelens/internal/domain/audit"
	"github.com/pagelens/pagelens/internal/domain/audits"
)

// registerTools registers all pagelens MCP tools on the given server.
func registerTools(s *server.MCPServer, logger zerolog.Logger) {
	// 1. pagelens_audit
	s.AddTool(
		mcplib.NewTool("pagelens_audit",
			mcplib.WithDescription("Audit a web page and return the full scored report as JSON"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to audit"),
			),
		),
		handleAudit(logger),
	)

	// 2. pagelens_weights
	s.AddTool(
		mcplib.NewTool("pagelens_weights",
			mcplib.WithDescription("Return the category and sub-metric weight tables used for scoring"),
		),
		handleWeights(),
	)
}

func handleAudit(logger zerolog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := configloader.New().Load(".")
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		fetcher := fetch.New(cfg.FetchTimeout)
		registry, err := audit.NewRegistry(audits.All(cfg, fetcher)...)
		if err != nil {
			return errorResult(fmt.Sprintf("registering audits: %v", err)), nil
		}

		svc := application.NewAuditService(browser.NewDriver(logger, true, cfg.NavigationTimeout), registry, cfg, logger)
		report, err := svc.Run(ctx, url)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleWeights() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(map[string]any{
			"categories":  domain.CategoryWeights,
			"sub_metrics": domain.SubWeights,
		})
	}
}

// jsonResult marshals v and wraps it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a result flagged as an error.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
