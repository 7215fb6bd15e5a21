package funding

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeProvider struct {
	name    string
	records []Record
	err     error
}

func (f *fakeProvider) Fetch(q Query) ([]Record, error) {
	return f.records, f.err
}

func (f *fakeProvider) Name() string {
	return f.name
}

func TestFetchRecentFundingRounds_NoProvidersReturnsSample(t *testing.T) {
	agg := NewAggregator()

	records := agg.FetchRecentFundingRounds(Query{}, "")

	assert.Equal(t, 3, len(records))
	assert.Equal(t, "Polygon", records[0].CompanyName)
	assert.Equal(t, float64(450000000), records[0].FundingAmount)
	assert.Equal(t, "Avalanche", records[1].CompanyName)
	assert.Equal(t, float64(350000000), records[1].FundingAmount)
	assert.Equal(t, "Chainlink Labs", records[2].CompanyName)
	assert.Equal(t, float64(225000000), records[2].FundingAmount)
}

func TestFetchRecentFundingRounds_AllProvidersFailReturnsSample(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{name: "Tracxn", err: errors.New("network down")},
		&fakeProvider{name: "Crunchbase", err: errors.New("bad response")},
	)

	records := agg.FetchRecentFundingRounds(Query{}, "")

	assert.Equal(t, 3, len(records))
	assert.Equal(t, "Polygon", records[0].CompanyName)
}

func TestFetchRecentFundingRounds_DedupPrefersHigherPriorityProvider(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{name: "Tracxn", records: []Record{
			{CompanyName: "Acme Chain", FundingAmount: 100, FundingRound: "Seed"},
		}},
		&fakeProvider{name: "Crunchbase", records: []Record{
			{CompanyName: "ACME CHAIN", FundingAmount: 999, FundingRound: "Series A"},
			{CompanyName: "Beta Ledger", FundingAmount: 50, FundingRound: "Seed"},
		}},
	)

	records := agg.FetchRecentFundingRounds(Query{}, "")

	assert.Equal(t, 2, len(records))
	// The Tracxn record wins the dedup even though Crunchbase reports a
	// larger amount for the same company.
	assert.Equal(t, "Acme Chain", records[0].CompanyName)
	assert.Equal(t, float64(100), records[0].FundingAmount)
	assert.Equal(t, "Beta Ledger", records[1].CompanyName)
}

func TestFetchRecentFundingRounds_StageFilter(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{name: "Tracxn", records: []Record{
			{CompanyName: "Acme Chain", FundingAmount: 100, FundingRound: "Series A"},
			{CompanyName: "Beta Ledger", FundingAmount: 500, FundingRound: "Seed"},
		}},
	)

	records := agg.FetchRecentFundingRounds(Query{}, "Series A")

	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Acme Chain", records[0].CompanyName)
}

func TestFetchRecentFundingRounds_SortedByAmountDescending(t *testing.T) {
	agg := NewAggregator(
		&fakeProvider{name: "Tracxn", records: []Record{
			{CompanyName: "Small", FundingAmount: 10},
			{CompanyName: "Big", FundingAmount: 300},
			{CompanyName: "Medium", FundingAmount: 200},
		}},
	)

	records := agg.FetchRecentFundingRounds(Query{}, "")

	assert.Equal(t, "Big", records[0].CompanyName)
	assert.Equal(t, "Medium", records[1].CompanyName)
	assert.Equal(t, "Small", records[2].CompanyName)
}

func TestDedupe_DropsEmptyCompanyNames(t *testing.T) {
	records := Dedupe([]Record{
		{CompanyName: "", FundingAmount: 100},
		{CompanyName: "Acme Chain"},
		{CompanyName: ""},
		{CompanyName: "acme chain"},
	})

	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Acme Chain", records[0].CompanyName)
}

func TestSortByAmount_StableForTies(t *testing.T) {
	records := []Record{
		{CompanyName: "First", FundingAmount: 100},
		{CompanyName: "Second", FundingAmount: 100},
		{CompanyName: "Third", FundingAmount: 200},
	}

	SortByAmount(records)

	assert.Equal(t, "Third", records[0].CompanyName)
	assert.Equal(t, "First", records[1].CompanyName)
	assert.Equal(t, "Second", records[2].CompanyName)
}

func TestSortByAmount_MissingAmountSortsLast(t *testing.T) {
	records := []Record{
		{CompanyName: "Unknown"},
		{CompanyName: "Funded", FundingAmount: 5},
	}

	SortByAmount(records)

	assert.Equal(t, "Funded", records[0].CompanyName)
	assert.Equal(t, "Unknown", records[1].CompanyName)
}

func TestFilterCompanies_AppliesThresholdAndStages(t *testing.T) {
	records := []Record{
		{CompanyName: "Too Small", FundingAmount: 5000000, FundingRound: "Series A"},
		{CompanyName: "Wrong Stage", FundingAmount: 50000000, FundingRound: "Seed"},
		{CompanyName: "Keeper", FundingAmount: 20000000, FundingRound: "Series B"},
	}

	filtered := FilterCompanies(records, FilterCriteria{})

	assert.Equal(t, 1, len(filtered))
	assert.Equal(t, "Keeper", filtered[0].CompanyName)
}

func TestFilterCompanies_LocationFilter(t *testing.T) {
	records := []Record{
		{CompanyName: "SF Co", FundingAmount: 20000000, FundingRound: "Series A", Location: "San Francisco, CA"},
		{CompanyName: "Berlin Co", FundingAmount: 30000000, FundingRound: "Series A", Location: "Berlin, Germany"},
	}

	filtered := FilterCompanies(records, FilterCriteria{Locations: []string{"San Francisco"}})

	assert.Equal(t, 1, len(filtered))
	assert.Equal(t, "SF Co", filtered[0].CompanyName)
}
