package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/mailer"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/outreach"
)

func testOptions() Options {
	return Options{Deps: Deps{
		Funding: funding.NewAggregator(),
		Sender:  &mailer.Sender{Host: "smtp.example.com", Port: 587},
	}}
}

func TestNewAllAgents_Registry(t *testing.T) {
	registry := NewAllAgents(testOptions())

	assert.Equal(t, 8, len(registry))
	for _, name := range []string{
		"recruiting_coordinator", "bd_agent", "candidate_outreach_agent",
		"marketing_content_agent", "backend_matching_agent", "search_agent",
		"email_discovery_agent", "email_sender_agent",
	} {
		cfg, ok := registry[name]
		if !ok {
			t.Fatalf("missing agent %q", name)
		}
		assert.Equal(t, name, cfg.Name)
		assert.Equal(t, TextModel, cfg.Model)
		assert.NotEqual(t, "", cfg.Instruction)
	}
}

func TestCoordinator_AggregatesSubAgentTools(t *testing.T) {
	cfg := NewCoordinator(testOptions())

	for _, name := range []string{"fetch_recent_funding_rounds", "find_person_email", "send_email"} {
		if _, ok := cfg.tool(name); !ok {
			t.Errorf("coordinator missing tool %q", name)
		}
	}
}

func TestBDAgent_FetchToolFallsBackToSample(t *testing.T) {
	cfg := NewBDAgent(testOptions())
	tool, ok := cfg.tool("fetch_recent_funding_rounds")
	assert.Equal(t, true, ok)

	result, err := tool.Handler(context.Background(), json.RawMessage(`{"sector":"blockchain"}`))
	assert.Equal(t, nil, err)

	records := result.([]funding.Record)
	assert.Equal(t, 3, len(records))
	assert.Equal(t, "Polygon", records[0].CompanyName)
}

func TestBDAgent_PersonalizeOutreachTool(t *testing.T) {
	cfg := NewBDAgent(testOptions())
	tool, _ := cfg.tool("personalize_outreach")

	args := json.RawMessage(`{"companies":[{"company_name":"Acme Chain","funding_amount":25000000,"funding_round":"Series A"}]}`)
	result, err := tool.Handler(context.Background(), args)
	assert.Equal(t, nil, err)

	strategies := result.([]outreach.Strategy)
	assert.Equal(t, 1, len(strategies))
	assert.Equal(t, "Acme Chain", strategies[0].CompanyName)
}

func TestEmailSenderAgent_SendToolDefaultsToDryRun(t *testing.T) {
	cfg := NewEmailSenderAgent(testOptions())
	tool, _ := cfg.tool("send_email")

	result, err := tool.Handler(context.Background(), json.RawMessage(`{"to":"cto@acme.com","subject":"hi","body":"hello"}`))
	assert.Equal(t, nil, err)

	sent := result.(mailer.Result)
	assert.Equal(t, mailer.StatusDryRun, sent.Status)
}
