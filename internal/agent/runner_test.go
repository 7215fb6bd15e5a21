package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/llm"
)

// fakeChat replays scripted responses and records what it was asked.
type fakeChat struct {
	responses []*llm.ToolResponse
	calls     int
	system    string
	messages  [][]llm.Message
	tools     []llm.ToolDef
}

func (f *fakeChat) Complete(ctx context.Context, system string, messages []llm.Message) (string, error) {
	resp, err := f.CompleteWithTools(ctx, system, messages, nil)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (f *fakeChat) CompleteWithTools(ctx context.Context, system string, messages []llm.Message, tools []llm.ToolDef) (*llm.ToolResponse, error) {
	f.system = system
	f.messages = append(f.messages, messages)
	f.tools = tools

	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

func testConfig(handler func(ctx context.Context, args json.RawMessage) (any, error)) Config {
	return Config{
		Name:        "test_agent",
		Instruction: "You are a test agent.",
		Tools: []Tool{
			{
				Name:        "lookup",
				Description: "Look something up.",
				Parameters:  objectSchema(map[string]any{"query": map[string]any{"type": "string"}}),
				Handler:     handler,
			},
		},
	}
}

func TestRunner_PlainAnswer(t *testing.T) {
	chat := &fakeChat{responses: []*llm.ToolResponse{
		{Content: "done"},
	}}
	runner := NewRunner(chat)

	got, err := runner.Run(context.Background(), testConfig(nil), "hello")

	assert.Equal(t, nil, err)
	assert.Equal(t, "done", got)
	assert.Equal(t, "You are a test agent.", chat.system)
	assert.Equal(t, 1, len(chat.tools))
	assert.Equal(t, "lookup", chat.tools[0].Name)
}

func TestRunner_ExecutesToolCalls(t *testing.T) {
	var gotArgs json.RawMessage
	handler := func(ctx context.Context, args json.RawMessage) (any, error) {
		gotArgs = args
		return map[string]string{"answer": "42"}, nil
	}

	chat := &fakeChat{responses: []*llm.ToolResponse{
		{ToolCalls: []llm.ToolCall{{ID: "call_1", Name: "lookup", Arguments: []byte(`{"query":"meaning"}`)}}},
		{Content: "the answer is 42"},
	}}
	runner := NewRunner(chat)

	got, err := runner.Run(context.Background(), testConfig(handler), "what is the answer?")

	assert.Equal(t, nil, err)
	assert.Equal(t, "the answer is 42", got)
	assert.Equal(t, `{"query":"meaning"}`, string(gotArgs))

	// Second round must carry the assistant tool call and its result.
	final := chat.messages[1]
	assert.Equal(t, 3, len(final))
	assert.Equal(t, llm.RoleAssistant, final[1].Role)
	assert.Equal(t, llm.RoleTool, final[2].Role)
	assert.Equal(t, "call_1", final[2].ToolCallID)
	assert.Equal(t, `{"answer":"42"}`, final[2].Content)
}

func TestRunner_UnknownToolReportedToModel(t *testing.T) {
	chat := &fakeChat{responses: []*llm.ToolResponse{
		{ToolCalls: []llm.ToolCall{{ID: "call_1", Name: "no_such_tool"}}},
		{Content: "recovered"},
	}}
	runner := NewRunner(chat)

	got, err := runner.Run(context.Background(), testConfig(nil), "hello")

	assert.Equal(t, nil, err)
	assert.Equal(t, "recovered", got)

	final := chat.messages[1]
	assert.Equal(t, `{"error": "unknown tool no_such_tool"}`, final[2].Content)
}

func TestRunner_BoundedIterations(t *testing.T) {
	loop := &llm.ToolResponse{ToolCalls: []llm.ToolCall{{ID: "c", Name: "lookup", Arguments: []byte(`{}`)}}}
	responses := make([]*llm.ToolResponse, DefaultMaxIterations)
	for i := range responses {
		responses[i] = loop
	}

	handler := func(ctx context.Context, args json.RawMessage) (any, error) {
		return "again", nil
	}
	runner := NewRunner(&fakeChat{responses: responses})

	_, err := runner.Run(context.Background(), testConfig(handler), "loop forever")
	assert.NotEqual(t, nil, err)
}
