package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names
const (
	ToolPress        = "calc_press"
	ToolDisplay      = "calc_display"
	ToolHistory      = "calc_history"
	ToolState        = "calc_state"
	ToolClearHistory = "calc_clear_history"
)

const pressDescription = `Press calculator keys in order. Keys are separated by spaces and use the
button labels: digits, ".", "+", "-", "×", "÷", "x^y", "y^x", "nCr", "nPr", "=",
functions such as "sin", "sqrt", "ln", "n!", "π", memory keys "MC", "MR", "M+",
"M-", "STO", "RCL", and "AC", "CE", "DEL", "(", ")", "DEG". Evaluation is strictly
left to right without operator precedence.`

// PressTool handles key presses.
type PressTool struct {
	session *session
	verbose bool
}

// GetTool returns the MCP tool definition
func (t *PressTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPress,
		mcp.WithDescription(pressDescription),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Space-separated keys, e.g. \"2 + 3 =\"")),
	)
}

// Handle processes the tool request
func (t *PressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := mcp.ParseString(req, "keys", "")
	if t.verbose {
		log.Printf("press %q", keys)
	}
	display, err := t.session.press(keys)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(display), nil
}

// DisplayTool returns the display.
type DisplayTool struct {
	session *session
}

// GetTool returns the MCP tool definition
func (t *DisplayTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolDisplay,
		mcp.WithDescription("Get the calculator display"),
	)
}

// Handle processes the tool request
func (t *DisplayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.session.display()), nil
}

// HistoryTool returns the evaluation history.
type HistoryTool struct {
	session *session
}

// GetTool returns the MCP tool definition
func (t *HistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolHistory,
		mcp.WithDescription("Get the last 20 evaluations as a JSON array, newest first"),
	)
}

// Handle processes the tool request
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.session.history())
}

// StateTool returns a snapshot of the calculator.
type StateTool struct {
	session *session
}

// GetTool returns the MCP tool definition
func (t *StateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolState,
		mcp.WithDescription("Get display, pending operation, angle mode, memory and parenthesis count as JSON"),
	)
}

// Handle processes the tool request
func (t *StateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.session.snapshot())
}

// ClearHistoryTool empties the history.
type ClearHistoryTool struct {
	session *session
}

// GetTool returns the MCP tool definition
func (t *ClearHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClearHistory,
		mcp.WithDescription("Clear the evaluation history"),
	)
}

// Handle processes the tool request
func (t *ClearHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.session.clearHistory()
	return mcp.NewToolResultText("history cleared"), nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
