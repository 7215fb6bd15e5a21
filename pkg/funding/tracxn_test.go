package funding

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestTracxnFetch(t *testing.T) {
	payload := map[string]interface{}{
		"companies": []map[string]interface{}{
			{
				"name":           "Acme Chain",
				"location":       "Berlin, Germany",
				"employee_count": "50-100 employees",
				"description":    "Layer 2 settlement network",
				"founders":       []string{"Ada Example"},
				"website":        "https://acmechain.io",
				"linkedin_url":   "https://linkedin.com/company/acmechain",
				"funding_rounds": []map[string]interface{}{
					{
						"amount_usd": 12000000,
						"round_type": "Series A",
						"date":       "2024-01-10",
						"investors":  []string{"Example Ventures"},
					},
					{
						"amount_usd": 3000000,
						"round_type": "Seed",
						"date":       "2022-06-01",
						"investors":  []string{"Angel One"},
					},
				},
			},
			{
				"name":           "No Rounds Inc",
				"funding_rounds": []map[string]interface{}{},
			},
		},
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewTracxnClient("test-key")
	client.baseURL = srv.URL

	records, err := client.Fetch(Query{})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Bearer test-key", gotAuth)

	// Companies without funding rounds are skipped.
	assert.Equal(t, 1, len(records))

	r := records[0]
	assert.Equal(t, "Acme Chain", r.CompanyName)
	assert.Equal(t, float64(12000000), r.FundingAmount)
	assert.Equal(t, "Series A", r.FundingRound)
	assert.Equal(t, "2024-01-10", r.FundingDate)
	assert.Equal(t, []string{"Example Ventures"}, r.Investors)
	assert.Equal(t, "blockchain", r.Sector)
	assert.Equal(t, "Berlin, Germany", r.Location)
	assert.Equal(t, []string{"Ada Example"}, r.KeyPeople)
	assert.Equal(t, "https://acmechain.io", r.Website)
}

func TestTracxnFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewTracxnClient("bad-key")
	client.baseURL = srv.URL

	_, err := client.Fetch(Query{})
	assert.NotEqual(t, nil, err)
}

func TestDealroomFetch(t *testing.T) {
	payload := map[string]interface{}{
		"companies": []map[string]interface{}{
			{
				"name":           "Beta Ledger",
				"city":           "Lisbon",
				"employee_count": "10-50 employees",
				"description":    "Custody infrastructure",
				"founders":       []string{"Bela Example"},
				"website":        "https://betaledger.com",
				"latest_funding": map[string]interface{}{
					"amount_usd":     8000000,
					"round_type":     "Seed",
					"announced_date": "2024-03-05",
					"investors":      []string{"Seed Fund"},
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewDealroomClient("test-key")
	client.baseURL = srv.URL

	records, err := client.Fetch(Query{Sector: "fintech"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Beta Ledger", records[0].CompanyName)
	assert.Equal(t, float64(8000000), records[0].FundingAmount)
	assert.Equal(t, "Seed", records[0].FundingRound)
	assert.Equal(t, "fintech", records[0].Sector)
	assert.Equal(t, "Lisbon", records[0].Location)
}

func TestCrunchbaseFetch_FiltersSectorAndMinAmount(t *testing.T) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"items": []map[string]interface{}{
				{
					"name":            "Chain Co",
					"category_groups": []string{"Blockchain"},
					"funding_rounds": []map[string]interface{}{
						{"raised_amount_usd": 50000000, "round_code": "Series B", "announced_on": "2024-02-02"},
					},
				},
				{
					"name":            "Tiny Chain",
					"category_groups": []string{"Blockchain"},
					"funding_rounds": []map[string]interface{}{
						{"raised_amount_usd": 1000, "round_code": "Seed", "announced_on": "2024-02-02"},
					},
				},
				{
					"name":            "Pet Food Co",
					"category_groups": []string{"Consumer"},
					"funding_rounds": []map[string]interface{}{
						{"raised_amount_usd": 90000000, "round_code": "Series C", "announced_on": "2024-02-02"},
					},
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("user_key"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewCrunchbaseClient("test-key")
	client.baseURL = srv.URL

	records, err := client.Fetch(Query{MinFundingAmount: 10000})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(records))
	assert.Equal(t, "Chain Co", records[0].CompanyName)
	assert.Equal(t, "Series B", records[0].FundingRound)
}
