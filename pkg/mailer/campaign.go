package mailer

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

// CampaignResult wraps a bulk run with campaign identity.
type CampaignResult struct {
	ID          string      `json:"campaign_id"`
	Name        string      `json:"campaign_name"`
	SubjectLine string      `json:"subject_line"`
	StartedAt   time.Time   `json:"started_at"`
	Summary     BulkSummary `json:"summary"`
}

// RunCampaign executes a named email campaign against a contact list.
func (s *Sender) RunCampaign(name string, recipients []Recipient, templates Templates, opts BulkOptions) CampaignResult {
	slog.Info("starting email campaign", "campaign", name, "contacts", len(recipients), "dry_run", opts.DryRun)

	result := CampaignResult{
		ID:          uuid.NewString(),
		Name:        name,
		SubjectLine: templates.Subject,
		StartedAt:   time.Now(),
		Summary:     s.SendBulk(recipients, templates, opts),
	}

	slog.Info("email campaign complete", "campaign", name, "sent", result.Summary.Sent)
	return result
}

// SendFollowUp sends a follow-up for an earlier result immediately. Deferred
// scheduling would need a task queue this system does not have; the intended
// delay is only recorded in the log.
func (s *Sender) SendFollowUp(original Result, subject, body string, delayDays int) Result {
	slog.Info("sending follow-up email", "to", original.To, "intended_delay_days", delayDays)

	return s.Send(Email{
		To:      original.To,
		Subject: subject,
		Body:    body,
	})
}

// ConnectionStatus reports a TestConnection attempt.
type ConnectionStatus struct {
	Status   string `json:"status"`
	Server   string `json:"server"`
	Port     int    `json:"port"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// TestConnection dials the SMTP server, negotiates STARTTLS and attempts
// authentication without sending anything.
func (s *Sender) TestConnection() ConnectionStatus {
	status := ConnectionStatus{Server: s.Host, Port: s.Port, Username: s.Username}

	if s.Username == "" || s.Password == "" {
		status.Status = StatusError
		status.Error = "email credentials not found; set BD_AGENT_EMAIL and BD_AGENT_EMAIL_PASSWORD"
		return status
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	client, err := smtp.Dial(addr)
	if err != nil {
		status.Status = StatusError
		status.Error = err.Error()
		return status
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			status.Status = StatusError
			status.Error = err.Error()
			return status
		}
	}

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	if err := client.Auth(auth); err != nil {
		status.Status = StatusError
		status.Error = err.Error()
		return status
	}

	status.Status = StatusSuccess
	status.Message = fmt.Sprintf("successfully connected to %s", addr)
	return status
}
