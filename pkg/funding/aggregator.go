package funding

import (
	"log/slog"
	"os"
	"sort"
	"strings"
)

// ProviderPriority is the fixed order in which providers are queried and, by
// extension, which provider wins when two report the same company.
var ProviderPriority = []string{"Tracxn", "Crunchbase", "Dealroom", "PitchBook"}

var providerEnvKeys = map[string]string{
	"Tracxn":     "TRACXN_API_KEY",
	"Crunchbase": "CRUNCHBASE_API_KEY",
	"Dealroom":   "DEALROOM_API_KEY",
	"PitchBook":  "PITCHBOOK_API_KEY",
}

// ProvidersFromEnv builds clients for every provider whose API key is set,
// preserving ProviderPriority order. Providers without keys are skipped.
func ProvidersFromEnv() []Provider {
	var providers []Provider
	for _, name := range ProviderPriority {
		key := os.Getenv(providerEnvKeys[name])
		if key == "" {
			slog.Info("provider API key not configured, skipping", "provider", name)
			continue
		}
		switch name {
		case "Tracxn":
			providers = append(providers, NewTracxnClient(key))
		case "Crunchbase":
			providers = append(providers, NewCrunchbaseClient(key))
		case "Dealroom":
			providers = append(providers, NewDealroomClient(key))
		case "PitchBook":
			providers = append(providers, NewPitchBookClient(key))
		}
	}
	return providers
}

// Aggregator merges funding rounds from its providers into a single
// deduplicated, sorted list. It never fails: provider errors count as zero
// results and an empty outcome falls back to the sample set.
type Aggregator struct {
	providers []Provider
}

func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// FetchRecentFundingRounds collects records from every configured provider,
// deduplicates them by company name (first seen wins), applies the optional
// stage filter and sorts by funding amount descending. With no providers
// configured, or nothing surviving the merge, it returns the sample set.
func (a *Aggregator) FetchRecentFundingRounds(q Query, stage string) []Record {
	q = q.withDefaults()
	slog.Info("fetching recent funding rounds", "sector", q.Sector, "timeframe_days", q.TimeframeDays)

	if len(a.providers) == 0 {
		slog.Warn("no funding providers configured, using sample data")
		return sortedSample()
	}

	var all []Record
	for _, p := range a.providers {
		records, err := p.Fetch(q)
		if err != nil {
			slog.Error("error fetching funding data", "provider", p.Name(), "error", err)
			continue
		}
		slog.Info("fetched funding data", "provider", p.Name(), "count", len(records))
		all = append(all, records...)
	}

	unique := Dedupe(all)

	if stage != "" {
		unique = filterStage(unique, stage)
	}

	SortByAmount(unique)

	slog.Info("funding aggregation complete", "unique_companies", len(unique))

	if len(unique) == 0 {
		slog.Warn("no companies found from providers, returning sample data")
		return sortedSample()
	}

	return unique
}

func sortedSample() []Record {
	records := SampleRecords()
	SortByAmount(records)
	return records
}

// Dedupe keeps the first record for each company name, compared
// case-insensitively. Records without a company name are dropped since they
// cannot be keyed.
func Dedupe(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	unique := make([]Record, 0, len(records))
	for _, r := range records {
		key := strings.ToLower(r.CompanyName)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// SortByAmount orders records by funding amount, highest first. The sort is
// stable so equal amounts keep their provider-priority order.
func SortByAmount(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].FundingAmount > records[j].FundingAmount
	})
}

func filterStage(records []Record, stage string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(r.FundingRound, stage) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
