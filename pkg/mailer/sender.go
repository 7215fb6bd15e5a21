package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"os"
	"path/filepath"
	"time"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusDryRun  = "dry_run"
)

const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
)

// Email is a single outbound message. HTMLBody and Attachments are optional.
type Email struct {
	To          string   `json:"to_email"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	HTMLBody    string   `json:"html_body,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
	DryRun      bool     `json:"dry_run"`
}

// Result is the outcome of one send attempt. Failures are reported here, not
// as Go errors, so bulk runs can keep going.
type Result struct {
	Status    string    `json:"status"`
	To        string    `json:"to_email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Sender transmits mail over authenticated STARTTLS SMTP.
type Sender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string

	// send is swappable in tests so no connection is opened.
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSender builds a sender from explicit values, filling blanks from the
// environment: BD_AGENT_EMAIL / BD_AGENT_EMAIL_PASSWORD first, then
// EMAIL_SENDER_EMAIL / EMAIL_SENDER_PASSWORD.
func NewSender(host string, port int, username, password, from string) *Sender {
	if host == "" {
		host = DefaultSMTPHost
	}
	if port == 0 {
		port = DefaultSMTPPort
	}
	if username == "" {
		username = envFirst("BD_AGENT_EMAIL", "EMAIL_SENDER_EMAIL")
	}
	if password == "" {
		password = envFirst("BD_AGENT_EMAIL_PASSWORD", "EMAIL_SENDER_PASSWORD")
	}
	if from == "" {
		from = username
	}
	return &Sender{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		send:     smtp.SendMail,
	}
}

// NewSenderFromEnv is NewSender with everything defaulted.
func NewSenderFromEnv() *Sender {
	return NewSender("", 0, "", "", "")
}

func envFirst(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Send delivers one email. Dry runs return immediately without opening a
// connection; missing credentials and transport failures come back as an
// error Result.
func (s *Sender) Send(email Email) Result {
	result := Result{To: email.To, Subject: email.Subject, Timestamp: time.Now()}

	if email.DryRun {
		slog.Info("dry run: would send email", "to", email.To)
		result.Status = StatusDryRun
		result.Message = "Email would be sent in production"
		return result
	}

	if s.From == "" || s.Username == "" || s.Password == "" {
		result.Status = StatusError
		result.Error = "email credentials not found; set BD_AGENT_EMAIL and BD_AGENT_EMAIL_PASSWORD"
		slog.Error("missing email credentials", "to", email.To)
		return result
	}

	msg, err := s.buildMessage(email)
	if err != nil {
		result.Status = StatusError
		result.Error = err.Error()
		slog.Error("failed to build email", "to", email.To, "error", err)
		return result
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	if err := s.send(addr, auth, s.From, []string{email.To}, msg); err != nil {
		result.Status = StatusError
		result.Error = err.Error()
		slog.Error("failed to send email", "to", email.To, "error", err)
		return result
	}

	slog.Info("email sent", "to", email.To)
	result.Status = StatusSuccess
	result.Message = "Email sent successfully"
	return result
}

// buildMessage renders the RFC 2822 payload: plain text only, a
// multipart/alternative pair when an HTML body is set, and a multipart/mixed
// wrapper when files are attached.
func (s *Sender) buildMessage(email Email) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", s.From)
	fmt.Fprintf(&buf, "To: %s\r\n", email.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", email.Subject)
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody == "" && len(email.Attachments) == 0 {
		buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		buf.WriteString(email.Body)
		return buf.Bytes(), nil
	}

	writer := multipart.NewWriter(&buf)
	if len(email.Attachments) > 0 {
		fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())
	} else {
		fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", writer.Boundary())
	}

	if err := writeBodyParts(writer, email, len(email.Attachments) > 0); err != nil {
		return nil, err
	}

	for _, path := range email.Attachments {
		if err := writeAttachment(writer, path); err != nil {
			slog.Warn("skipping attachment", "path", path, "error", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeBodyParts(writer *multipart.Writer, email Email, nested bool) error {
	if !nested {
		return writeAlternative(writer, email)
	}

	// With attachments the text/html pair nests inside the mixed wrapper.
	var inner bytes.Buffer
	alt := multipart.NewWriter(&inner)
	if err := writeAlternative(alt, email); err != nil {
		return err
	}
	if err := alt.Close(); err != nil {
		return err
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", alt.Boundary()))
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(inner.Bytes())
	return err
}

func writeAlternative(writer *multipart.Writer, email Email) error {
	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	part, err := writer.CreatePart(textHeader)
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(email.Body)); err != nil {
		return err
	}

	if email.HTMLBody != "" {
		htmlHeader := textproto.MIMEHeader{}
		htmlHeader.Set("Content-Type", "text/html; charset=utf-8")
		part, err := writer.CreatePart(htmlHeader)
		if err != nil {
			return err
		}
		if _, err := part.Write([]byte(email.HTMLBody)); err != nil {
			return err
		}
	}
	return nil
}

func writeAttachment(writer *multipart.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "application/octet-stream")
	header.Set("Content-Transfer-Encoding", "base64")
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	_, err = part.Write([]byte(encoded))
	return err
}
