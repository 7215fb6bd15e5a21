package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/mailer"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/outreach"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	sector := flag.String("sector", "", "sector to search, defaults to blockchain")
	stage := flag.String("stage", "", "optional funding stage filter, e.g. Series A")
	days := flag.Int("days", 0, "lookback window in days, defaults to 90")
	minFunding := flag.Float64("min-funding", 0, "minimum funding amount for targets")
	live := flag.Bool("live", false, "actually send outreach emails instead of a dry run")
	flag.Parse()

	aggregator := funding.NewAggregator(funding.ProvidersFromEnv()...)

	records := aggregator.FetchRecentFundingRounds(funding.Query{
		Sector:           *sector,
		MinFundingAmount: *minFunding,
		TimeframeDays:    *days,
	}, *stage)

	targets := funding.FilterCompanies(records, funding.FilterCriteria{MinFunding: *minFunding})
	slog.Info("prospecting complete", "fetched", len(records), "targets", len(targets))

	if len(targets) == 0 {
		slog.Info("no companies matched the target criteria")
		return
	}

	strategies := outreach.BuildStrategies(targets, []outreach.MessageKind{outreach.KindEmail})

	sender := mailer.NewSenderFromEnv()

	var sent, failed int
	for i, strategy := range strategies {
		address := outreachAddress(targets[i])
		if address == "" {
			slog.Warn("no contact address for company", "company", strategy.CompanyName)
			failed++
			continue
		}

		message := strategy.GeneratedMessages[outreach.KindEmail]
		result := sender.Send(mailer.Email{
			To:      address,
			Subject: message.Subject,
			Body:    message.Body,
			DryRun:  !*live,
		})

		if result.Status == mailer.StatusError {
			slog.Error("outreach send failed", "company", strategy.CompanyName, "error", result.Error)
			failed++
			continue
		}
		sent++
	}

	slog.Info("outreach complete", "sent", sent, "failed", failed, "dry_run", !*live)
}

// outreachAddress guesses a contact address from the company website domain.
func outreachAddress(record funding.Record) string {
	domain := record.Website
	for _, prefix := range []string{"https://", "http://", "www."} {
		domain = strings.TrimPrefix(domain, prefix)
	}
	domain = strings.TrimSuffix(domain, "/")
	if domain == "" {
		return ""
	}
	return "careers@" + domain
}
