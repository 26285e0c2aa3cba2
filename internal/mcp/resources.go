// ABOUTME: MCP resource implementations for water intake tracking.
// ABOUTME: Provides the waterlog://today daily progress resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// waterlog://today - progress for the current local day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "waterlog://today",
		Name:        "Today's Water Intake",
		Description: "Total, goal, percent, and recent entries for the current local day",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now().UTC()
	p, err := s.svc.Stats(s.externalID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	result := map[string]interface{}{
		"generated_at": now.Format(time.RFC3339),
		"timezone":     p.Timezone,
		"total_ml":     p.TotalML,
		"goal_ml":      p.GoalML,
		"percent":      p.Percent,
		"recent_ml":    p.Recent,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "waterlog://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
