package discovery

import (
	"fmt"
	"regexp"
	"strings"
)

// Candidate is one possible email address with its discovery metadata.
type Candidate struct {
	Email        string `json:"email"`
	Confidence   int    `json:"confidence_score"`
	Source       string `json:"source"`
	Verification string `json:"verification_status"`
}

const sourcePattern = "pattern_generation"

// GeneratePatterns enumerates common corporate address patterns for a full
// name at a domain. A single-word name yields only the bare first-name
// pattern.
func GeneratePatterns(name, domain string) []Candidate {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) == 0 {
		return nil
	}
	first := parts[0]
	last := ""
	if len(parts) > 1 {
		last = parts[len(parts)-1]
	}

	locals := []string{first}
	if last != "" {
		locals = append(locals,
			first+"."+last,
			first+last,
			last+"."+first,
			last+first,
			first+"_"+last,
			first+"-"+last,
			first+string(last[0]),
			first+"."+string(last[0]),
			string(first[0])+last,
			string(first[0])+"."+last,
		)
	}

	candidates := make([]Candidate, 0, len(locals))
	for _, local := range locals {
		candidates = append(candidates, Candidate{
			Email:        fmt.Sprintf("%s@%s", local, domain),
			Confidence:   patternConfidence(local, first, last),
			Source:       sourcePattern,
			Verification: "unverified",
		})
	}
	return candidates
}

// patternConfidence assigns a static heuristic score to a generated local
// part. first.last is the most common corporate convention, so it scores
// highest; very short locals are penalized.
func patternConfidence(local, first, last string) int {
	confidence := 50
	hasBoth := last != "" && strings.Contains(local, first) && strings.Contains(local, last)
	switch {
	case hasBoth && strings.Contains(local, "."):
		confidence += 20
	case hasBoth:
		confidence += 10
	}
	if len(local) < 3 {
		confidence -= 20
	}
	return clampScore(confidence)
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// knownDomains maps well-known company names to their primary domain so
// pattern generation does not guess "<company>.com" for them.
var knownDomains = map[string]string{
	"google":     "google.com",
	"microsoft":  "microsoft.com",
	"apple":      "apple.com",
	"amazon":     "amazon.com",
	"meta":       "meta.com",
	"netflix":    "netflix.com",
	"tesla":      "tesla.com",
	"uber":       "uber.com",
	"airbnb":     "airbnb.com",
	"stripe":     "stripe.com",
	"salesforce": "salesforce.com",
	"oracle":     "oracle.com",
	"nvidia":     "nvidia.com",
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// DomainForCompany returns the known domain for a company, or a guessed
// "<company>.com" with punctuation stripped.
func DomainForCompany(company string) string {
	squashed := strings.ReplaceAll(strings.ToLower(company), " ", "")
	for key, domain := range knownDomains {
		if strings.Contains(squashed, key) {
			return domain
		}
	}
	return nonAlnum.ReplaceAllString(strings.ToLower(company), "") + ".com"
}
