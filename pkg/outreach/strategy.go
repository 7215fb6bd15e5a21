package outreach

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
)

// Strategy bundles everything needed to run outreach against one company.
type Strategy struct {
	ID                string                  `json:"id"`
	CompanyName       string                  `json:"company_name"`
	FundingInfo       string                  `json:"funding_info"`
	ValueProposition  string                  `json:"value_proposition"`
	OutreachChannels  []string                `json:"outreach_channels"`
	DecisionMakers    []string                `json:"decision_makers"`
	FollowUpSequence  []string                `json:"follow_up_sequence"`
	Services          []string                `json:"services"`
	GeneratedMessages map[MessageKind]Message `json:"generated_messages"`
	MeetingPlan       MeetingPlan             `json:"meeting_plan"`
}

// MeetingPlan describes how a booked meeting with the company should run.
type MeetingPlan struct {
	Objective         string   `json:"objective"`
	ProposedAgenda    []string `json:"proposed_agenda"`
	CalendarPlatforms []string `json:"calendar_platforms"`
	CRMPlatforms      []string `json:"crm_platforms"`
	Availability      string   `json:"availability"`
	PipelineStage     string   `json:"pipeline_stage"`
	FollowUpPlan      []string `json:"follow_up_plan"`
}

// DefaultServices are the recruiting services pitched when none are given.
var DefaultServices = []string{
	"Technical Recruiting",
	"Executive Search",
	"Employer Branding",
	"Recruitment Process Optimization",
}

// BuildStrategies creates a personalized outreach strategy, including rendered
// messages and a meeting plan, for each target company.
func BuildStrategies(records []funding.Record, kinds []MessageKind) []Strategy {
	if kinds == nil {
		kinds = []MessageKind{KindEmail, KindLinkedIn}
	}

	slog.Info("creating personalized outreach", "companies", len(records))

	strategies := make([]Strategy, 0, len(records))
	for _, record := range records {
		messages := make(map[MessageKind]Message, len(kinds))
		for _, kind := range kinds {
			messages[kind] = BuildMessage(record, kind)
		}

		strategies = append(strategies, Strategy{
			ID:          uuid.NewString(),
			CompanyName: record.CompanyName,
			FundingInfo: fmt.Sprintf("Recently raised %s in %s", formatUSD(record.FundingAmount), record.FundingRound),
			ValueProposition: "Specialized blockchain recruiting expertise to help you " +
				"hire top talent quickly and efficiently",
			OutreachChannels: []string{"LinkedIn", "Email", "Direct Call"},
			DecisionMakers:   []string{"CTO", "VP Engineering", "Head of People"},
			FollowUpSequence: []string{
				"Initial outreach",
				"Follow-up email (3 days)",
				"LinkedIn connection",
				"Phone call attempt",
				"Final follow-up",
			},
			Services:          DefaultServices,
			GeneratedMessages: messages,
			MeetingPlan:       buildMeetingPlan(),
		})
	}

	return strategies
}

func buildMeetingPlan() MeetingPlan {
	return MeetingPlan{
		Objective: "Discuss recruiting partnership opportunities",
		ProposedAgenda: []string{
			"Company overview and recent funding success",
			"Current hiring challenges and timeline",
			"Our specialized blockchain recruiting services",
			"Success stories and case studies",
			"Next steps and proposal timeline",
		},
		CalendarPlatforms: []string{"Calendly", "Google Calendar", "Outlook"},
		CRMPlatforms:      []string{"Salesforce", "HubSpot", "Pipedrive"},
		Availability:      "Monday-Friday, 9 AM - 6 PM EST",
		PipelineStage:     "Qualification",
		FollowUpPlan: []string{
			"Send meeting confirmation with agenda",
			"Pre-meeting research on company and key decision makers",
			"Post-meeting summary and next steps",
			"Proposal delivery within 48 hours",
			"Follow-up call to address questions",
		},
	}
}
