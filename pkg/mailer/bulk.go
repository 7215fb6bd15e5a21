package mailer

import (
	"log/slog"
	"strings"
	"time"
)

// Recipient carries the per-person fields available to template placeholders.
type Recipient struct {
	Email    string            `json:"email"`
	Name     string            `json:"name,omitempty"`
	Company  string            `json:"company,omitempty"`
	Position string            `json:"position,omitempty"`
	Location string            `json:"location,omitempty"`
	Domain   string            `json:"domain,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Templates are the subject/body skeletons personalized per recipient with
// {name}-style placeholders.
type Templates struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    string `json:"html,omitempty"`
}

// BulkOptions control a bulk run. Delay throttles live sends; it is skipped
// for dry runs and after the final recipient.
type BulkOptions struct {
	DryRun bool
	Delay  time.Duration
}

// DefaultSendDelay spaces out live sends to stay under provider rate limits.
const DefaultSendDelay = time.Second

// BulkSummary reports a whole bulk run, one Result per recipient attempted.
type BulkSummary struct {
	Total   int      `json:"total_emails"`
	Sent    int      `json:"sent_emails"`
	Failed  int      `json:"failed_emails"`
	Results []Result `json:"email_results"`
	DryRun  bool     `json:"dry_run"`
}

// SendBulk personalizes and sends the templates to every recipient in order.
// A recipient without an address, or a failed send, is counted and the loop
// continues.
func (s *Sender) SendBulk(recipients []Recipient, templates Templates, opts BulkOptions) BulkSummary {
	if opts.Delay == 0 {
		opts.Delay = DefaultSendDelay
	}

	slog.Info("sending bulk emails", "recipients", len(recipients), "dry_run", opts.DryRun)

	summary := BulkSummary{Total: len(recipients), DryRun: opts.DryRun}

	for i, recipient := range recipients {
		if recipient.Email == "" {
			slog.Warn("missing email address for recipient", "index", i)
			summary.Failed++
			continue
		}

		email := Email{
			To:       recipient.Email,
			Subject:  renderTemplate(templates.Subject, recipient),
			Body:     renderTemplate(templates.Body, recipient),
			HTMLBody: renderTemplate(templates.HTML, recipient),
			DryRun:   opts.DryRun,
		}

		result := s.Send(email)
		summary.Results = append(summary.Results, result)

		switch result.Status {
		case StatusError:
			summary.Failed++
		default:
			summary.Sent++
		}

		if !opts.DryRun && i < len(recipients)-1 {
			time.Sleep(opts.Delay)
		}
	}

	slog.Info("bulk email sending complete", "sent", summary.Sent, "failed", summary.Failed)
	return summary
}

// renderTemplate substitutes {placeholder} occurrences with recipient fields.
// Unknown placeholders are left untouched.
func renderTemplate(template string, r Recipient) string {
	if template == "" {
		return ""
	}

	pairs := []string{
		"{email}", r.Email,
		"{name}", r.Name,
		"{company}", r.Company,
		"{position}", r.Position,
		"{location}", r.Location,
		"{domain}", r.Domain,
	}
	for key, value := range r.Extra {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
