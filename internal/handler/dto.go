package handler

import (
	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/mailer"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/outreach"
)

type FundingRoundsResponse struct {
	Companies []funding.Record `json:"companies"`
	Total     int              `json:"total"`
	Sector    string           `json:"sector"`
	Stage     string           `json:"stage,omitempty"`
}

type OutreachRequest struct {
	Companies []funding.Record       `json:"companies"`
	Kinds     []outreach.MessageKind `json:"message_types,omitempty"`
}

type OutreachResponse struct {
	Strategies []outreach.Strategy `json:"strategies"`
	Total      int                 `json:"total"`
}

type FindEmailRequest struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

type AdminEmailRequest struct {
	Company            string `json:"company"`
	Domain             string `json:"domain,omitempty"`
	IncludeGeneral     *bool  `json:"include_general,omitempty"`
	IncludeDepartments *bool  `json:"include_departments,omitempty"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
}

type SendEmailRequest struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	HTMLBody string `json:"html_body,omitempty"`
	DryRun   *bool  `json:"dry_run,omitempty"`
}

type CampaignRequest struct {
	Name       string             `json:"campaign_name"`
	Recipients []mailer.Recipient `json:"recipients"`
	Subject    string             `json:"subject"`
	Body       string             `json:"body"`
	HTML       string             `json:"html,omitempty"`
	DryRun     *bool              `json:"dry_run,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
	Agent   string `json:"agent,omitempty"`
}

type ChatResponse struct {
	Agent       string `json:"agent"`
	Model       string `json:"model"`
	Interaction string `json:"interaction_type"`
	Reply       string `json:"reply"`
}
