package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/discovery"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/mailer"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/outreach"
)

// Deps are the shared services agent tools call into.
type Deps struct {
	Funding  *funding.Aggregator
	Finder   *discovery.Finder
	Verifier *discovery.Verifier
	Sender   *mailer.Sender
}

// Options configure agent construction.
type Options struct {
	Deps      Deps
	Selection SelectionInput
}

func (o Options) model() string {
	return ModelFor(o.Selection)
}

// NewCoordinator builds the coordinator agent. Its tools are the sub-agents
// themselves, dispatched by name through a Runner.
func NewCoordinator(opts Options) Config {
	return Config{
		Name:        "recruiting_coordinator",
		Description: "Orchestrates specialized sub-agents for end-to-end hiring solutions.",
		Instruction: coordinatorInstruction,
		Model:       opts.model(),
		OutputKey:   "recruiting_coordinator_output",
		Tools: append(
			NewBDAgent(opts).Tools,
			append(NewEmailDiscoveryAgent(opts).Tools, NewEmailSenderAgent(opts).Tools...)...,
		),
	}
}

func NewBDAgent(opts Options) Config {
	deps := opts.Deps
	return Config{
		Name:        "bd_agent",
		Description: "Identifies recently funded companies and builds business development outreach.",
		Instruction: bdInstruction,
		Model:       opts.model(),
		OutputKey:   "business_development_analysis_output",
		Tools: []Tool{
			{
				Name:        "fetch_recent_funding_rounds",
				Description: "Fetch recent funding rounds across all configured data providers.",
				Parameters: objectSchema(map[string]any{
					"sector":             map[string]any{"type": "string"},
					"min_funding_amount": map[string]any{"type": "number"},
					"timeframe_days":     map[string]any{"type": "integer"},
					"stage":              map[string]any{"type": "string"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Sector           string  `json:"sector"`
						MinFundingAmount float64 `json:"min_funding_amount"`
						TimeframeDays    int     `json:"timeframe_days"`
						Stage            string  `json:"stage"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					return deps.Funding.FetchRecentFundingRounds(funding.Query{
						Sector:           params.Sector,
						MinFundingAmount: params.MinFundingAmount,
						TimeframeDays:    params.TimeframeDays,
					}, params.Stage), nil
				},
			},
			{
				Name:        "filter_blockchain_companies",
				Description: "Filter funding records down to realistic recruiting targets.",
				Parameters: objectSchema(map[string]any{
					"companies":     map[string]any{"type": "array"},
					"min_funding":   map[string]any{"type": "number"},
					"target_stages": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"locations":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Companies    []funding.Record `json:"companies"`
						MinFunding   float64          `json:"min_funding"`
						TargetStages []string         `json:"target_stages"`
						Locations    []string         `json:"locations"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					return funding.FilterCompanies(params.Companies, funding.FilterCriteria{
						MinFunding:   params.MinFunding,
						TargetStages: params.TargetStages,
						Locations:    params.Locations,
					}), nil
				},
			},
			{
				Name:        "personalize_outreach",
				Description: "Build personalized outreach strategies for funded companies.",
				Parameters: objectSchema(map[string]any{
					"companies": map[string]any{"type": "array"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Companies []funding.Record `json:"companies"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					kinds := []outreach.MessageKind{outreach.KindEmail, outreach.KindLinkedIn}
					return outreach.BuildStrategies(params.Companies, kinds), nil
				},
			},
			{
				Name:        "send_personalized_emails",
				Description: "Send personalized outreach emails to a contact list. Dry run by default.",
				Parameters: objectSchema(map[string]any{
					"recipients": map[string]any{"type": "array"},
					"subject":    map[string]any{"type": "string"},
					"body":       map[string]any{"type": "string"},
					"dry_run":    map[string]any{"type": "boolean"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Recipients []mailer.Recipient `json:"recipients"`
						Subject    string             `json:"subject"`
						Body       string             `json:"body"`
						DryRun     *bool              `json:"dry_run"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					opts := mailer.BulkOptions{DryRun: true}
					if params.DryRun != nil {
						opts.DryRun = *params.DryRun
					}
					templates := mailer.Templates{Subject: params.Subject, Body: params.Body}
					return deps.Sender.SendBulk(params.Recipients, templates, opts), nil
				},
			},
			{
				Name:        "book_meeting",
				Description: "Propose a discovery meeting plan for a target company.",
				Parameters: objectSchema(map[string]any{
					"company": map[string]any{"type": "string"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Company string `json:"company"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					strategies := outreach.BuildStrategies([]funding.Record{
						{CompanyName: params.Company},
					}, nil)
					if len(strategies) == 0 {
						return nil, fmt.Errorf("no meeting plan for %q", params.Company)
					}
					return strategies[0].MeetingPlan, nil
				},
			},
		},
	}
}

func NewOutreachAgent(opts Options) Config {
	return Config{
		Name:        "candidate_outreach_agent",
		Description: "Develops candidate engagement strategies and messaging frameworks.",
		Instruction: outreachInstruction,
		Model:       opts.model(),
		OutputKey:   "candidate_outreach_output",
	}
}

func NewMarketingAgent(opts Options) Config {
	return Config{
		Name:        "marketing_content_agent",
		Description: "Creates job descriptions, employer branding and campaign content.",
		Instruction: marketingInstruction,
		Model:       opts.model(),
		OutputKey:   "marketing_content_output",
	}
}

func NewMatchingAgent(opts Options) Config {
	return Config{
		Name:        "backend_matching_agent",
		Description: "Recommends ATS, CRM, analytics and automation solutions.",
		Instruction: matchingInstruction,
		Model:       opts.model(),
		OutputKey:   "backend_matching_output",
	}
}

func NewSearchAgent(opts Options) Config {
	return Config{
		Name:        "search_agent",
		Description: "Provides real-time research when other agents lack current information.",
		Instruction: searchInstruction,
		Model:       opts.model(),
		OutputKey:   "search_output",
	}
}

func NewEmailDiscoveryAgent(opts Options) Config {
	deps := opts.Deps
	return Config{
		Name:        "email_discovery_agent",
		Description: "Finds and verifies email addresses for individuals and companies.",
		Instruction: emailDiscoveryInstruction,
		Model:       opts.model(),
		OutputKey:   "email_discovery_output",
		Tools: []Tool{
			{
				Name:        "find_person_email",
				Description: "Find likely email addresses for a person at a company or domain.",
				Parameters: objectSchema(map[string]any{
					"name":    map[string]any{"type": "string"},
					"company": map[string]any{"type": "string"},
					"domain":  map[string]any{"type": "string"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var q discovery.PersonQuery
					if err := unmarshalArgs(args, &q); err != nil {
						return nil, err
					}
					return deps.Finder.FindPersonEmail(q), nil
				},
			},
			{
				Name:        "find_company_admin_emails",
				Description: "Find general and departmental contact addresses for a company.",
				Parameters: objectSchema(map[string]any{
					"company":             map[string]any{"type": "string"},
					"domain":              map[string]any{"type": "string"},
					"include_general":     map[string]any{"type": "boolean"},
					"include_departments": map[string]any{"type": "boolean"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Company            string `json:"company"`
						Domain             string `json:"domain"`
						IncludeGeneral     *bool  `json:"include_general"`
						IncludeDepartments *bool  `json:"include_departments"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					general, departments := true, true
					if params.IncludeGeneral != nil {
						general = *params.IncludeGeneral
					}
					if params.IncludeDepartments != nil {
						departments = *params.IncludeDepartments
					}
					return deps.Finder.FindCompanyAdminEmails(params.Company, params.Domain, general, departments), nil
				},
			},
			{
				Name:        "verify_email",
				Description: "Verify an email address and score its deliverability.",
				Parameters: objectSchema(map[string]any{
					"email": map[string]any{"type": "string"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Email string `json:"email"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					return deps.Verifier.Verify(params.Email), nil
				},
			},
		},
	}
}

func NewEmailSenderAgent(opts Options) Config {
	deps := opts.Deps
	return Config{
		Name:        "email_sender_agent",
		Description: "Sends individual, bulk and campaign emails over SMTP.",
		Instruction: emailSenderInstruction,
		Model:       opts.model(),
		OutputKey:   "email_sender_output",
		Tools: []Tool{
			{
				Name:        "send_email",
				Description: "Send a single email. Dry run by default.",
				Parameters: objectSchema(map[string]any{
					"to":        map[string]any{"type": "string"},
					"subject":   map[string]any{"type": "string"},
					"body":      map[string]any{"type": "string"},
					"html_body": map[string]any{"type": "string"},
					"dry_run":   map[string]any{"type": "boolean"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						To       string `json:"to"`
						Subject  string `json:"subject"`
						Body     string `json:"body"`
						HTMLBody string `json:"html_body"`
						DryRun   *bool  `json:"dry_run"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					dryRun := true
					if params.DryRun != nil {
						dryRun = *params.DryRun
					}
					return deps.Sender.Send(mailer.Email{
						To:       params.To,
						Subject:  params.Subject,
						Body:     params.Body,
						HTMLBody: params.HTMLBody,
						DryRun:   dryRun,
					}), nil
				},
			},
			{
				Name:        "send_bulk_emails",
				Description: "Send a personalized email to every recipient in a list. Dry run by default.",
				Parameters: objectSchema(map[string]any{
					"recipients": map[string]any{"type": "array"},
					"subject":    map[string]any{"type": "string"},
					"body":       map[string]any{"type": "string"},
					"dry_run":    map[string]any{"type": "boolean"},
				}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					var params struct {
						Recipients []mailer.Recipient `json:"recipients"`
						Subject    string             `json:"subject"`
						Body       string             `json:"body"`
						DryRun     *bool              `json:"dry_run"`
					}
					if err := unmarshalArgs(args, &params); err != nil {
						return nil, err
					}
					opts := mailer.BulkOptions{DryRun: true}
					if params.DryRun != nil {
						opts.DryRun = *params.DryRun
					}
					return deps.Sender.SendBulk(params.Recipients, mailer.Templates{
						Subject: params.Subject,
						Body:    params.Body,
					}, opts), nil
				},
			},
			{
				Name:        "test_email_connection",
				Description: "Check SMTP connectivity and credentials without sending.",
				Parameters:  objectSchema(map[string]any{}),
				Handler: func(ctx context.Context, args json.RawMessage) (any, error) {
					return deps.Sender.TestConnection(), nil
				},
			},
		},
	}
}

// NewAllAgents builds the full registry keyed by agent name.
func NewAllAgents(opts Options) map[string]Config {
	configs := []Config{
		NewCoordinator(opts),
		NewBDAgent(opts),
		NewOutreachAgent(opts),
		NewMarketingAgent(opts),
		NewMatchingAgent(opts),
		NewSearchAgent(opts),
		NewEmailDiscoveryAgent(opts),
		NewEmailSenderAgent(opts),
	}

	registry := make(map[string]Config, len(configs))
	for _, cfg := range configs {
		registry[cfg.Name] = cfg
	}
	return registry
}

func objectSchema(properties map[string]any) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}

func unmarshalArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}
	return nil
}
