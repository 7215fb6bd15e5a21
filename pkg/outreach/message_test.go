package outreach

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
)

func sampleRecord() funding.Record {
	return funding.Record{
		CompanyName:   "Acme Chain",
		FundingAmount: 25000000,
		FundingRound:  "Series A",
		Description:   "Layer 2 settlement network",
		HiringPlans:   "doubling the engineering team",
		KeyPeople:     []string{"Ada Example", "Grace Example"},
	}
}

func TestBuildMessage_Email(t *testing.T) {
	msg := BuildMessage(sampleRecord(), KindEmail)

	assert.Equal(t, "Acme Chain", msg.CompanyName)
	assert.Equal(t, KindEmail, msg.Kind)
	assert.Equal(t, "Congratulations on your Series A funding - Let's discuss your hiring plans", msg.Subject)
	assert.Equal(t, true, strings.HasPrefix(msg.Body, "Dear Ada Example,"))
	assert.Equal(t, true, strings.Contains(msg.Body, "$25,000,000"))
	assert.Equal(t, true, strings.Contains(msg.Body, "layer 2 settlement network"))
	assert.Equal(t, []string{"Ada Example", "Grace Example"}, msg.Recipients)
}

func TestBuildMessage_LinkedIn(t *testing.T) {
	msg := BuildMessage(sampleRecord(), KindLinkedIn)

	assert.Equal(t, "Congratulations on the Series A funding!", msg.Subject)
	assert.Equal(t, true, strings.HasPrefix(msg.Body, "Hi Ada Example,"))
	assert.Equal(t, true, strings.Contains(msg.Body, "doubling the engineering team"))
}

func TestBuildMessage_FallbackGreetings(t *testing.T) {
	record := sampleRecord()
	record.KeyPeople = nil

	email := BuildMessage(record, KindEmail)
	assert.Equal(t, true, strings.HasPrefix(email.Body, "Dear Team,"))

	linkedin := BuildMessage(record, KindLinkedIn)
	assert.Equal(t, true, strings.HasPrefix(linkedin.Body, "Hi there,"))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0", formatUSD(0))
	assert.Equal(t, "$950", formatUSD(950))
	assert.Equal(t, "$1,000", formatUSD(1000))
	assert.Equal(t, "$225,000,000", formatUSD(225000000))
}

func TestBuildStrategies(t *testing.T) {
	strategies := BuildStrategies([]funding.Record{sampleRecord()}, nil)

	assert.Equal(t, 1, len(strategies))

	s := strategies[0]
	assert.NotEqual(t, "", s.ID)
	assert.Equal(t, "Acme Chain", s.CompanyName)
	assert.Equal(t, "Recently raised $25,000,000 in Series A", s.FundingInfo)
	assert.Equal(t, 2, len(s.GeneratedMessages))
	assert.Equal(t, 5, len(s.FollowUpSequence))
	assert.Equal(t, "Discuss recruiting partnership opportunities", s.MeetingPlan.Objective)

	_, hasEmail := s.GeneratedMessages[KindEmail]
	_, hasLinkedIn := s.GeneratedMessages[KindLinkedIn]
	assert.Equal(t, true, hasEmail)
	assert.Equal(t, true, hasLinkedIn)
}

func TestBuildStrategies_ExplicitKinds(t *testing.T) {
	strategies := BuildStrategies([]funding.Record{sampleRecord()}, []MessageKind{KindEmail})

	assert.Equal(t, 1, len(strategies[0].GeneratedMessages))
}
