package agent

import (
	"context"
	"encoding/json"
)

// Tool pairs a model-facing definition with the handler that executes it.
// Parameters is a JSON schema object.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
	Handler     func(ctx context.Context, args json.RawMessage) (any, error)
}

// Config describes one agent: its identity, system instruction, model and
// the tools it may call.
type Config struct {
	Name        string
	Description string
	Instruction string
	Model       string
	OutputKey   string
	Tools       []Tool
}

func (c Config) tool(name string) (Tool, bool) {
	for _, t := range c.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}
