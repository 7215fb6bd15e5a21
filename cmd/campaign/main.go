package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/mailer"
)

// campaignFile is the JSON document a campaign run is driven by.
type campaignFile struct {
	Name       string             `json:"campaign_name"`
	Subject    string             `json:"subject"`
	Body       string             `json:"body"`
	HTML       string             `json:"html,omitempty"`
	Recipients []mailer.Recipient `json:"recipients"`
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	file := flag.String("contacts", "contacts.json", "path to the campaign JSON file")
	live := flag.Bool("live", false, "actually send emails instead of a dry run")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("error reading campaign file: %v", err)
	}

	var campaign campaignFile
	if err := json.Unmarshal(data, &campaign); err != nil {
		log.Fatalf("error parsing campaign file: %v", err)
	}

	if len(campaign.Recipients) == 0 {
		slog.Error("campaign file has no recipients", "file", *file)
		return
	}

	sender := mailer.NewSenderFromEnv()

	result := sender.RunCampaign(campaign.Name, campaign.Recipients, mailer.Templates{
		Subject: campaign.Subject,
		Body:    campaign.Body,
		HTML:    campaign.HTML,
	}, mailer.BulkOptions{DryRun: !*live})

	slog.Info("campaign finished",
		"campaign", result.Name,
		"id", result.ID,
		"sent", result.Summary.Sent,
		"failed", result.Summary.Failed,
		"dry_run", result.Summary.DryRun,
	)
}
