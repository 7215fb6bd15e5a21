package llm

import (
	"context"
	"encoding/json"
)

// Role identifies who produced a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a provider-neutral conversation turn. Assistant turns may carry
// tool calls; tool turns carry the result for one call, matched by ToolCallID.
type Message struct {
	Role       Role
	Content    string
	ToolCallID string
	ToolCalls  []ToolCall
}

// ToolCall is a model request to invoke a named tool with JSON arguments.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolDef describes a callable tool to the model. Parameters is a JSON
// schema object.
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolResponse is one assistant turn: text content, tool calls, or both.
type ToolResponse struct {
	Content   string
	ToolCalls []ToolCall
}

type Chat interface {
	Complete(ctx context.Context, system string, messages []Message) (string, error)
	CompleteWithTools(ctx context.Context, system string, messages []Message, tools []ToolDef) (*ToolResponse, error)
}
