// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and the today resource.
package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/waterlog/internal/storage"
	"github.com/harperreed/waterlog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupServer builds an MCP server over a temp-dir SQLite store.
func setupServer(t *testing.T) *Server {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "waterlog-mcp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	db, err := storage.Open(filepath.Join(tmpDir, "waterlog.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := tracker.New(db, 2000, "UTC")
	server, err := NewServer(svc, "local")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.svc == nil {
		t.Error("Expected non-nil svc")
	}
	if server.externalID != "local" {
		t.Errorf("externalID = %q, want %q", server.externalID, "local")
	}
}

func TestHandleLogWater(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logWaterInput
		wantErr   bool
		errSubstr string
	}{
		{
			name:  "valid amount",
			input: logWaterInput{AmountML: 300},
		},
		{
			name:      "zero amount",
			input:     logWaterInput{AmountML: 0},
			wantErr:   true,
			errSubstr: "must be positive",
		},
		{
			name:      "negative amount",
			input:     logWaterInput{AmountML: -50},
			wantErr:   true,
			errSubstr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errSubstr)
				}
				return
			}
			if err != nil {
				t.Fatalf("handleLogWater failed: %v", err)
			}
			if output.TotalML != tt.input.AmountML {
				t.Errorf("TotalML = %d, want %d", output.TotalML, tt.input.AmountML)
			}
			if output.GoalML != 2000 {
				t.Errorf("GoalML = %d, want default 2000", output.GoalML)
			}
		})
	}
}

func TestHandleGetProgress(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	if _, _, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{AmountML: 500}); err != nil {
		t.Fatalf("handleLogWater failed: %v", err)
	}

	_, output, err := server.handleGetProgress(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleGetProgress failed: %v", err)
	}
	if output.TotalML != 500 {
		t.Errorf("TotalML = %d, want 500", output.TotalML)
	}
	if len(output.Recent) != 1 || output.Recent[0] != 500 {
		t.Errorf("Recent = %v, want [500]", output.Recent)
	}
}

func TestHandleUndoLast(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	// Empty day: undone=false, no error.
	_, output, err := server.handleUndoLast(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleUndoLast failed: %v", err)
	}
	if output.Undone {
		t.Error("expected Undone=false on empty day")
	}

	if _, _, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{AmountML: 250}); err != nil {
		t.Fatalf("handleLogWater failed: %v", err)
	}

	_, output, err = server.handleUndoLast(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("handleUndoLast failed: %v", err)
	}
	if !output.Undone || output.RemovedML != 250 {
		t.Errorf("undo = (%d, %v), want (250, true)", output.RemovedML, output.Undone)
	}
	if output.TotalML != 0 {
		t.Errorf("TotalML = %d, want 0 after undo", output.TotalML)
	}
}

func TestHandleSetGoal(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleSetGoal(ctx, &mcp.CallToolRequest{}, setGoalInput{GoalML: 3000})
	if err != nil {
		t.Fatalf("handleSetGoal failed: %v", err)
	}
	if output.GoalML != 3000 {
		t.Errorf("GoalML = %d, want 3000", output.GoalML)
	}

	// Out-of-range goals are clamped, not rejected.
	_, output, err = server.handleSetGoal(ctx, &mcp.CallToolRequest{}, setGoalInput{GoalML: 50})
	if err != nil {
		t.Fatalf("handleSetGoal failed: %v", err)
	}
	if output.GoalML != 200 {
		t.Errorf("GoalML = %d, want clamped 200", output.GoalML)
	}
}

func TestHandleTodayResource(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	if _, _, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{AmountML: 400}); err != nil {
		t.Fatalf("handleLogWater failed: %v", err)
	}

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleTodayResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Contents = %d entries, want 1", len(result.Contents))
	}
	text := result.Contents[0].Text
	for _, want := range []string{`"goal_ml": 2000`, `"total_ml": 400`, `"timezone": "UTC"`} {
		if !strings.Contains(text, want) {
			t.Errorf("resource missing %q:\n%s", want, text)
		}
	}
}
