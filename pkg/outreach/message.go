package outreach

import (
	"fmt"
	"strings"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
)

// MessageKind selects the outreach channel a message is written for.
type MessageKind string

const (
	KindEmail    MessageKind = "email"
	KindLinkedIn MessageKind = "linkedin"
)

// Message is a rendered outreach message for one company.
type Message struct {
	CompanyName string      `json:"company_name"`
	Kind        MessageKind `json:"message_type"`
	Subject     string      `json:"subject"`
	Body        string      `json:"body"`
	Recipients  []string    `json:"recipients"`
}

const emailBodyTemplate = `Dear %s,

Congratulations on %s's recent %s funding round of %s!

I've been following %s's impressive work in %s. With your plans for %s, I believe we could be a valuable partner in scaling your talent acquisition efforts.

Our specialized blockchain recruiting expertise has helped companies like yours hire top engineering and product talent 40%% faster than traditional methods. We understand the unique challenges of building teams in the blockchain space and can help you:

- Source and screen specialized blockchain developers
- Build compelling employer branding for crypto talent
- Optimize your recruitment process for rapid scaling
- Provide executive search for key leadership roles

Would you be interested in a 15-minute call to discuss how we can support your hiring goals? I'm available this week and next.

Best regards,
[Your Name]
[Your Title]
[Your Company]
[Your Phone]`

const linkedInBodyTemplate = `Hi %s,

Congratulations on %s's recent %s funding round!

I've been impressed by your work in %s. With your plans to %s, I'd love to discuss how our specialized blockchain recruiting services could help you scale your team efficiently.

We've helped similar companies hire top talent 40%% faster. Would you be open to a quick call this week?

Best,
[Your Name]`

// BuildMessage renders a personalized outreach message from a funding record.
// Missing fields fall back to neutral defaults rather than failing.
func BuildMessage(record funding.Record, kind MessageKind) Message {
	description := strings.ToLower(record.Description)
	hiringPlans := record.HiringPlans
	if hiringPlans == "" {
		hiringPlans = "growing the team after the raise"
	}

	var subject, body, greeting string
	switch kind {
	case KindLinkedIn:
		greeting = firstPerson(record.KeyPeople, "there")
		subject = fmt.Sprintf("Congratulations on the %s funding!", record.FundingRound)
		body = fmt.Sprintf(linkedInBodyTemplate,
			greeting, record.CompanyName, record.FundingRound, description, hiringPlans)
	default:
		greeting = firstPerson(record.KeyPeople, "Team")
		subject = fmt.Sprintf("Congratulations on your %s funding - Let's discuss your hiring plans", record.FundingRound)
		body = fmt.Sprintf(emailBodyTemplate,
			greeting, record.CompanyName, record.FundingRound, formatUSD(record.FundingAmount),
			record.CompanyName, description, hiringPlans)
	}

	return Message{
		CompanyName: record.CompanyName,
		Kind:        kind,
		Subject:     subject,
		Body:        body,
		Recipients:  record.KeyPeople,
	}
}

func firstPerson(people []string, fallback string) string {
	if len(people) > 0 && people[0] != "" {
		return people[0]
	}
	return fallback
}

// formatUSD renders an amount as $1,234,567. Fractions are dropped; funding
// amounts are whole dollars.
func formatUSD(amount float64) string {
	n := int64(amount)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}
