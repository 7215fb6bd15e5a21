package funding

import (
	"log/slog"
	"strings"
)

// FilterCriteria narrows an aggregated record list to outreach targets.
type FilterCriteria struct {
	MinFunding   float64
	TargetStages []string
	Locations    []string
}

const DefaultMinFunding = 10000000

// DefaultTargetStages are the rounds worth pursuing for recruiting outreach.
var DefaultTargetStages = []string{"Series A", "Series B", "Series C"}

// FilterCompanies applies funding, stage and location criteria and returns the
// survivors sorted by funding amount descending.
func FilterCompanies(records []Record, criteria FilterCriteria) []Record {
	if criteria.MinFunding <= 0 {
		criteria.MinFunding = DefaultMinFunding
	}
	if criteria.TargetStages == nil {
		criteria.TargetStages = DefaultTargetStages
	}

	slog.Info("filtering companies",
		"count", len(records),
		"min_funding", criteria.MinFunding,
		"stages", criteria.TargetStages,
	)

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if r.FundingAmount < criteria.MinFunding {
			continue
		}
		if !stageAllowed(r.FundingRound, criteria.TargetStages) {
			continue
		}
		if len(criteria.Locations) > 0 && !locationMatches(r.Location, criteria.Locations) {
			continue
		}
		filtered = append(filtered, r)
	}

	SortByAmount(filtered)
	return filtered
}

func stageAllowed(round string, stages []string) bool {
	for _, s := range stages {
		if round == s {
			return true
		}
	}
	return false
}

func locationMatches(location string, wanted []string) bool {
	for _, w := range wanted {
		if strings.Contains(location, w) {
			return true
		}
	}
	return false
}
