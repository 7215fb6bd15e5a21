package discovery

import (
	"log/slog"
	"os"
	"sort"
	"strings"
)

// PersonQuery identifies the person whose address should be found.
type PersonQuery struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Domain   string `json:"domain,omitempty"`
	Position string `json:"position,omitempty"`
	Location string `json:"location,omitempty"`
}

// PersonResult lists discovered candidates for one person. Error is set
// instead of returning a Go error so a bad input still produces a usable,
// empty result.
type PersonResult struct {
	Name       string      `json:"name"`
	Company    string      `json:"company"`
	Domain     string      `json:"domain"`
	Position   string      `json:"position,omitempty"`
	Location   string      `json:"location,omitempty"`
	Candidates []Candidate `json:"candidates"`
	Error      string      `json:"error,omitempty"`
}

// Finder combines pattern generation with any configured external lookups.
type Finder struct {
	lookups []Lookup
}

func NewFinder(lookups ...Lookup) *Finder {
	return &Finder{lookups: lookups}
}

// NewFinderFromEnv wires up Hunter and Clearbit when their keys are present.
// Without keys the finder still works on generated patterns alone.
func NewFinderFromEnv() *Finder {
	var lookups []Lookup
	if key := os.Getenv("HUNTER_API_KEY"); key != "" {
		lookups = append(lookups, NewHunterClient(key))
	}
	if key := os.Getenv("CLEARBIT_API_KEY"); key != "" {
		lookups = append(lookups, NewClearbitClient(key))
	}
	return NewFinder(lookups...)
}

// FindPersonEmail generates pattern candidates and merges in external lookup
// results, deduplicated by address and ordered by confidence. Lookup failures
// are logged and skipped.
func (f *Finder) FindPersonEmail(q PersonQuery) PersonResult {
	q.Name = strings.TrimSpace(q.Name)
	q.Company = strings.TrimSpace(q.Company)

	result := PersonResult{
		Name:     q.Name,
		Company:  q.Company,
		Domain:   q.Domain,
		Position: q.Position,
		Location: q.Location,
	}

	if q.Name == "" {
		result.Error = "name is required and cannot be empty"
		return result
	}
	if q.Company == "" {
		result.Error = "company is required and cannot be empty"
		return result
	}

	if result.Domain == "" {
		result.Domain = DomainForCompany(q.Company)
	}

	slog.Info("searching for email", "name", q.Name, "company", q.Company, "domain", result.Domain)

	candidates := GeneratePatterns(q.Name, result.Domain)

	for _, lookup := range f.lookups {
		found, err := lookup.Find(q.Name, result.Domain)
		if err != nil {
			slog.Error("email lookup failed", "source", lookup.Name(), "error", err)
			continue
		}
		candidates = append(candidates, found...)
	}

	result.Candidates = dedupeCandidates(candidates)

	slog.Info("email search complete", "name", q.Name, "candidates", len(result.Candidates))
	return result
}

// dedupeCandidates keeps the highest-confidence entry per address and sorts
// the survivors by confidence descending.
func dedupeCandidates(candidates []Candidate) []Candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	seen := make(map[string]struct{}, len(candidates))
	unique := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(c.Email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

// AdminResult lists generic and department contact addresses for a company.
type AdminResult struct {
	Company          string      `json:"company"`
	Domain           string      `json:"domain"`
	GeneralEmails    []Candidate `json:"general_emails"`
	DepartmentEmails []Candidate `json:"department_emails"`
}

var generalPrefixes = []string{
	"admin", "contact", "info", "hello", "support", "help", "team", "office", "main",
}

var departmentPrefixes = []string{
	"hr", "human.resources", "recruiting", "talent", "careers", "jobs",
	"sales", "marketing", "business", "partnerships", "legal", "finance",
	"accounting", "billing", "customer.service", "press", "media", "pr",
	"communications",
}

// FindCompanyAdminEmails enumerates well-known contact addresses for a
// company domain. General addresses score higher than department ones.
func (f *Finder) FindCompanyAdminEmails(company, domain string, includeGeneral, includeDepartments bool) AdminResult {
	if domain == "" {
		domain = DomainForCompany(company)
	}

	result := AdminResult{Company: company, Domain: domain}

	if includeGeneral {
		for _, prefix := range generalPrefixes {
			result.GeneralEmails = append(result.GeneralEmails, Candidate{
				Email:        prefix + "@" + domain,
				Confidence:   70,
				Source:       sourcePattern,
				Verification: "unverified",
			})
		}
	}
	if includeDepartments {
		for _, prefix := range departmentPrefixes {
			result.DepartmentEmails = append(result.DepartmentEmails, Candidate{
				Email:        prefix + "@" + domain,
				Confidence:   60,
				Source:       sourcePattern,
				Verification: "unverified",
			})
		}
	}

	slog.Info("admin email search complete", "company", company,
		"general", len(result.GeneralEmails), "departments", len(result.DepartmentEmails))
	return result
}

// BulkResult summarizes a bulk email-finding run.
type BulkResult struct {
	TotalContacts   int            `json:"total_contacts"`
	Processed       int            `json:"processed_contacts"`
	SuccessfulFinds int            `json:"successful_finds"`
	WithEmails      []PersonResult `json:"contacts_with_emails"`
	WithoutEmails   []PersonResult `json:"contacts_without_emails"`
}

// DefaultBulkLimit caps how many contacts a single bulk run will process.
const DefaultBulkLimit = 50

// BulkFindEmails runs FindPersonEmail over a contact list, bounded by limit
// (DefaultBulkLimit when zero). Individual failures never stop the run.
func (f *Finder) BulkFindEmails(contacts []PersonQuery, limit int) BulkResult {
	if limit <= 0 {
		limit = DefaultBulkLimit
	}

	slog.Info("starting bulk email finder", "contacts", len(contacts), "limit", limit)

	result := BulkResult{TotalContacts: len(contacts)}
	for i, contact := range contacts {
		if i >= limit {
			break
		}
		personResult := f.FindPersonEmail(contact)
		result.Processed++

		if len(personResult.Candidates) > 0 {
			result.SuccessfulFinds++
			result.WithEmails = append(result.WithEmails, personResult)
		} else {
			result.WithoutEmails = append(result.WithoutEmails, personResult)
		}
	}

	slog.Info("bulk email finder complete",
		"successful", result.SuccessfulFinds, "processed", result.Processed)
	return result
}
