package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/llm"
)

// DefaultMaxIterations bounds the tool-call loop for a single run.
const DefaultMaxIterations = 8

// Runner drives one agent conversation: it feeds the model, executes the
// tool calls it asks for and loops until the model answers in plain text.
type Runner struct {
	chat          llm.Chat
	maxIterations int
}

func NewRunner(chat llm.Chat) *Runner {
	return &Runner{chat: chat, maxIterations: DefaultMaxIterations}
}

// Run executes a single user request against the agent. The returned string
// is the model's final text answer.
func (r *Runner) Run(ctx context.Context, cfg Config, input string) (string, error) {
	defs := make([]llm.ToolDef, 0, len(cfg.Tools))
	for _, tool := range cfg.Tools {
		defs = append(defs, llm.ToolDef{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}

	messages := []llm.Message{{Role: llm.RoleUser, Content: input}}

	for i := 0; i < r.maxIterations; i++ {
		resp, err := r.chat.CompleteWithTools(ctx, cfg.Instruction, messages, defs)
		if err != nil {
			return "", fmt.Errorf("agent %s: %w", cfg.Name, err)
		}

		if len(resp.ToolCalls) == 0 {
			return resp.Content, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    r.execute(ctx, cfg, call),
			})
		}
	}

	return "", fmt.Errorf("agent %s: no final answer after %d iterations", cfg.Name, r.maxIterations)
}

// execute runs one tool call and returns its JSON result. Failures are
// reported back to the model as content so it can recover or rephrase.
func (r *Runner) execute(ctx context.Context, cfg Config, call llm.ToolCall) string {
	tool, ok := cfg.tool(call.Name)
	if !ok {
		slog.Warn("unknown tool requested", "agent", cfg.Name, "tool", call.Name)
		return fmt.Sprintf(`{"error": "unknown tool %s"}`, call.Name)
	}

	slog.Info("executing tool", "agent", cfg.Name, "tool", call.Name)

	result, err := tool.Handler(ctx, call.Arguments)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(encoded)
}
