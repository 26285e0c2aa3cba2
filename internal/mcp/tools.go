// ABOUTME: MCP tool implementations for water intake tracking.
// ABOUTME: Log, progress, undo, and goal operations for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/waterlog/internal/models"
	"github.com/harperreed/waterlog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Record a water intake in milliliters",
	}, s.handleLogWater)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get today's water intake progress against the daily goal",
	}, s.handleGetProgress)

	// undo_last
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "undo_last",
		Description: "Remove the most recent water intake logged today",
	}, s.handleUndoLast)

	// set_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goal",
		Description: "Set the daily water goal in milliliters (200-10000)",
	}, s.handleSetGoal)
}

// Tool input/output types

type logWaterInput struct {
	AmountML int `json:"amount_ml" jsonschema:"Amount of water in milliliters (must be positive)"`
}

type progressOutput struct {
	TotalML  int    `json:"total_ml"`
	GoalML   int    `json:"goal_ml"`
	Percent  int    `json:"percent"`
	Recent   []int  `json:"recent_ml"`
	Timezone string `json:"timezone"`
	Message  string `json:"message"`
}

type undoOutput struct {
	RemovedML int    `json:"removed_ml"`
	Undone    bool   `json:"undone"`
	TotalML   int    `json:"total_ml"`
	Message   string `json:"message"`
}

type setGoalInput struct {
	GoalML int `json:"goal_ml" jsonschema:"Daily goal in milliliters; values outside 200-10000 are clamped"`
}

func progressResult(p *tracker.Progress, msg string) progressOutput {
	return progressOutput{
		TotalML:  p.TotalML,
		GoalML:   p.GoalML,
		Percent:  p.Percent,
		Recent:   p.Recent,
		Timezone: p.Timezone,
		Message:  msg,
	}
}

// Tool handlers

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, progressOutput, error) {
	if !models.ValidAmount(input.AmountML) {
		return nil, progressOutput{}, fmt.Errorf("amount_ml must be positive, got %d", input.AmountML)
	}

	p, err := s.svc.Drink(s.externalID, input.AmountML, time.Now().UTC())
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to log water: %w", err)
	}

	msg := fmt.Sprintf("Added %d ml. Today: %d / %d ml (%d%%)", input.AmountML, p.TotalML, p.GoalML, p.Percent)
	return nil, progressResult(p, msg), nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, progressOutput, error) {
	p, err := s.svc.Stats(s.externalID, time.Now().UTC())
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to get progress: %w", err)
	}

	msg := fmt.Sprintf("Today: %d / %d ml (%d%%)", p.TotalML, p.GoalML, p.Percent)
	return nil, progressResult(p, msg), nil
}

func (s *Server) handleUndoLast(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, undoOutput, error) {
	removed, undone, p, err := s.svc.Undo(s.externalID, time.Now().UTC())
	if err != nil {
		return nil, undoOutput{}, fmt.Errorf("failed to undo: %w", err)
	}

	msg := "Nothing logged today, nothing to undo."
	if undone {
		msg = fmt.Sprintf("Removed %d ml. Today: %d / %d ml", removed, p.TotalML, p.GoalML)
	}
	return nil, undoOutput{
		RemovedML: removed,
		Undone:    undone,
		TotalML:   p.TotalML,
		Message:   msg,
	}, nil
}

func (s *Server) handleSetGoal(ctx context.Context, req *mcp.CallToolRequest, input setGoalInput) (*mcp.CallToolResult, progressOutput, error) {
	p, err := s.svc.SetGoal(s.externalID, input.GoalML, time.Now().UTC())
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to set goal: %w", err)
	}

	msg := fmt.Sprintf("Daily goal is now %d ml. Today: %d / %d ml (%d%%)", p.GoalML, p.TotalML, p.GoalML, p.Percent)
	return nil, progressResult(p, msg), nil
}
