package discovery

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"os"
	"regexp"
	"strings"
)

var emailFormat = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var disposableDomains = map[string]struct{}{
	"10minutemail.com":  {},
	"guerrillamail.com": {},
	"mailinator.com":    {},
	"tempmail.org":      {},
	"throwaway.email":   {},
	"temp-mail.org":     {},
}

// VerifyResult reports how an address held up under each verification step.
type VerifyResult struct {
	Email           string   `json:"email"`
	IsValidFormat   bool     `json:"is_valid_format"`
	IsDeliverable   bool     `json:"is_deliverable"`
	ConfidenceScore int      `json:"confidence_score"`
	Methods         []string `json:"verification_methods"`
	Errors          []string `json:"errors"`
}

// Verifier checks format, DNS and optionally live SMTP deliverability.
// Lookup functions are fields so tests can run without touching the network.
type Verifier struct {
	lookupMX   func(domain string) ([]*net.MX, error)
	lookupHost func(domain string) ([]string, error)
	smtpProbe  func(email, mxHost string) error
	probeLive  bool
}

// NewVerifier builds a verifier using real DNS lookups. The live SMTP probe
// is enabled only by ENABLE_SMTP_VERIFICATION=true.
func NewVerifier() *Verifier {
	return &Verifier{
		lookupMX:   net.LookupMX,
		lookupHost: net.LookupHost,
		smtpProbe:  probeSMTP,
		probeLive:  strings.EqualFold(os.Getenv("ENABLE_SMTP_VERIFICATION"), "true"),
	}
}

// Verify scores an address. A format failure short-circuits: no DNS lookup is
// attempted and the confidence stays at zero.
func (v *Verifier) Verify(email string) VerifyResult {
	result := VerifyResult{Email: email, Errors: []string{}, Methods: []string{}}

	if !emailFormat.MatchString(email) {
		result.Errors = append(result.Errors, "invalid email format")
		return result
	}
	result.IsValidFormat = true
	result.ConfidenceScore += 20
	result.Methods = append(result.Methods, "format_validation")

	domain := email[strings.LastIndex(email, "@")+1:]

	if v.domainResolves(domain) {
		result.ConfidenceScore += 30
		result.Methods = append(result.Methods, "domain_validation")
	} else {
		result.Errors = append(result.Errors, "invalid domain")
		result.ConfidenceScore = clampScore(result.ConfidenceScore)
		return result
	}

	if v.probeLive {
		if err := v.probe(email, domain); err != nil {
			result.Errors = append(result.Errors, err.Error())
		} else {
			result.IsDeliverable = true
			result.ConfidenceScore += 50
			result.Methods = append(result.Methods, "smtp_verification")
		}
	}

	if _, disposable := disposableDomains[strings.ToLower(domain)]; disposable {
		result.ConfidenceScore -= 30
		result.Methods = append(result.Methods, "disposable_email_check")
		result.Errors = append(result.Errors, "disposable email domain detected")
	}

	result.ConfidenceScore = clampScore(result.ConfidenceScore)

	slog.Info("email verification complete", "email", email, "score", result.ConfidenceScore)
	return result
}

// domainResolves accepts a domain with MX records, falling back to an A
// record when none exist.
func (v *Verifier) domainResolves(domain string) bool {
	if mx, err := v.lookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	hosts, err := v.lookupHost(domain)
	return err == nil && len(hosts) > 0
}

func (v *Verifier) probe(email, domain string) error {
	mx, err := v.lookupMX(domain)
	if err != nil || len(mx) == 0 {
		return fmt.Errorf("smtp verification failed: no MX host for %s", domain)
	}
	if err := v.smtpProbe(email, strings.TrimSuffix(mx[0].Host, ".")); err != nil {
		return fmt.Errorf("smtp verification failed: %w", err)
	}
	return nil
}

// probeSMTP asks the recipient's MX whether the mailbox exists without
// sending anything.
func probeSMTP(email, mxHost string) error {
	client, err := smtp.Dial(mxHost + ":25")
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: mxHost}); err != nil {
			return err
		}
	}
	return client.Verify(email)
}
