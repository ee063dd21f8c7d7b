package tools

import (
	"context"
	"fmt"
	"sync"
)

// ThinkTool is an append-only scratchpad. It gives specialists a place
// to outline steps or draft insights without producing output for the
// coordinator.
type ThinkTool struct {
	BaseTool
	mu    sync.Mutex
	notes []string
}

func NewThinkTool() *ThinkTool {
	params := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"thought": map[string]interface{}{
				"type":        "string",
				"description": "A thought to record on the scratchpad",
			},
		},
		"required": []string{"thought"},
	}

	return &ThinkTool{
		BaseTool: NewBaseTool(
			"think",
			"Use as a scratchpad to reason about the task. Notes are kept but not shown to the user.",
			params,
		),
	}
}

func (t *ThinkTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	note, ok := args["thought"].(string)
	if !ok || note == "" {
		return nil, fmt.Errorf("thought parameter is required")
	}

	t.mu.Lock()
	t.notes = append(t.notes, note)
	count := len(t.notes)
	t.mu.Unlock()

	return map[string]interface{}{
		"recorded": true,
		"notes":    count,
	}, nil
}

// Notes returns a copy of the recorded scratchpad notes.
func (t *ThinkTool) Notes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.notes))
	copy(out, t.notes)
	return out
}
