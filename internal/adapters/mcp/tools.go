// Package mcp exposes the sorter over the Model Context Protocol so
// agent frontends can plan and run sorts as tools.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ordina/internal/application/commands"
	"ordina/internal/config"
	"ordina/internal/domain"
)

// RegisterSortTools adds the sorter tools to the MCP server. A pipeline
// is built per call so each request picks its own dry-run mode.
func RegisterSortTools(s *server.MCPServer, cfg *config.Config, log *slog.Logger) {
	s.AddTool(sortTool(), sortHandler(cfg, log))
	s.AddTool(profilesTool(), profilesHandler(cfg))
	s.AddTool(cacheStatsTool(), cacheStatsHandler(cfg))
}

// --- sort ---

func sortTool() mcp.Tool {
	return mcp.NewTool("sort",
		mcp.WithDescription("Route the files directly under a parent folder into its category sub-folders. Returns the moved/skipped report."),
		mcp.WithString("parent_id",
			mcp.Required(),
			mcp.Description("ID of the parent folder whose direct children should be sorted."),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Classify and report without moving anything."),
		),
	)
}

func sortHandler(cfg *config.Config, log *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parentID := req.GetString("parent_id", "")
		dryRun := req.GetBool("dry_run", false)

		opts := commands.OptionsFromConfig(cfg)
		opts.DryRun = dryRun

		pipeline, closer, err := commands.BuildPipeline(ctx, cfg, opts, log)
		if err != nil {
			return toolError(err)
		}
		defer closer()

		report, err := commands.NewSortCommand(pipeline, parentID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatReport(report)), nil
	}
}

// --- profiles ---

func profilesTool() mcp.Tool {
	return mcp.NewTool("profiles",
		mcp.WithDescription("List the configured folder profiles (description, include/exclude keywords)."),
	)
}

func profilesHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries := commands.NewProfilesCommand(cfg).Execute()
		if len(summaries) == 0 {
			return mcp.NewToolResultText("No folder profiles configured; folders match by name only."), nil
		}

		var b strings.Builder
		for _, s := range summaries {
			fmt.Fprintf(&b, "%s\n", s.Name)
			if s.Rule.Description != "" {
				fmt.Fprintf(&b, "  description: %s\n", s.Rule.Description)
			}
			if len(s.Rule.Include) > 0 {
				fmt.Fprintf(&b, "  include: %s\n", strings.Join(s.Rule.Include, ", "))
			}
			if len(s.Rule.Exclude) > 0 {
				fmt.Fprintf(&b, "  exclude: %s\n", strings.Join(s.Rule.Exclude, ", "))
			}
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

// --- cache_stats ---

func cacheStatsTool() mcp.Tool {
	return mcp.NewTool("cache_stats",
		mcp.WithDescription("Report the number of cached content-hash classifications."),
	)
}

func cacheStatsHandler(cfg *config.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := commands.BuildCache(ctx, cfg)
		if err != nil {
			return toolError(err)
		}
		if store == nil {
			return mcp.NewToolResultText("Cache is disabled."), nil
		}
		defer store.Close()

		n, err := store.Len(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%d cached entries", n)), nil
	}
}

// --- helpers ---

func formatReport(r *domain.SortReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %s\n", r.RunID, r.Summary())
	if r.DryRun {
		b.WriteString("(dry run, nothing was moved)\n")
	}
	for _, m := range r.Moved {
		fmt.Fprintf(&b, "moved   %s -> %s (%s)\n", m.Name, m.DestName, m.Method)
	}
	for _, s := range r.Skipped {
		fmt.Fprintf(&b, "skipped %s: %s\n", s.Name, s.Reason)
	}
	return b.String()
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
