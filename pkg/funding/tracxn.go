package funding

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type TracxnClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewTracxnClient(apiKey string) *TracxnClient {
	return &TracxnClient{
		apiKey:     apiKey,
		baseURL:    "https://api.tracxn.com/api/1.0",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *TracxnClient) Name() string {
	return "Tracxn"
}

func (c *TracxnClient) Fetch(q Query) ([]Record, error) {
	q = q.withDefaults()
	from, to := queryDateRange(q.TimeframeDays)

	params := url.Values{}
	params.Set("sector", q.Sector)
	params.Set("funding_date_from", from)
	params.Set("funding_date_to", to)
	params.Set("min_funding_amount", fmt.Sprintf("%.0f", q.MinFundingAmount))
	params.Set("limit", "100")

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/companies?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tracxn request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tracxn fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracxn fetch: unexpected status %d", resp.StatusCode)
	}

	var raw tracxnResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("tracxn decode: %w", err)
	}

	records := make([]Record, 0, len(raw.Companies))
	for _, company := range raw.Companies {
		latest, ok := latestRound(company.FundingRounds)
		if !ok {
			continue
		}

		records = append(records, Record{
			CompanyName:   company.Name,
			FundingAmount: latest.AmountUSD,
			FundingRound:  latest.RoundType,
			FundingDate:   latest.Date,
			Investors:     latest.Investors,
			Sector:        q.Sector,
			Location:      company.Location,
			CompanySize:   company.EmployeeCount,
			Description:   company.Description,
			KeyPeople:     company.Founders,
			Website:       company.Website,
			LinkedIn:      company.LinkedInURL,
		})
	}

	return records, nil
}

type tracxnResponse struct {
	Companies []tracxnCompany `json:"companies"`
}

type tracxnCompany struct {
	Name          string        `json:"name"`
	Location      string        `json:"location"`
	EmployeeCount string        `json:"employee_count"`
	Description   string        `json:"description"`
	Founders      []string      `json:"founders"`
	Website       string        `json:"website"`
	LinkedInURL   string        `json:"linkedin_url"`
	FundingRounds []tracxnRound `json:"funding_rounds"`
}

type tracxnRound struct {
	AmountUSD float64  `json:"amount_usd"`
	RoundType string   `json:"round_type"`
	Date      string   `json:"date"`
	Investors []string `json:"investors"`
}

// latestRound picks the most recent round by its ISO date string.
func latestRound(rounds []tracxnRound) (tracxnRound, bool) {
	if len(rounds) == 0 {
		return tracxnRound{}, false
	}
	latest := rounds[0]
	for _, r := range rounds[1:] {
		if r.Date > latest.Date {
			latest = r
		}
	}
	return latest, true
}

func queryDateRange(timeframeDays int) (from, to string) {
	end := time.Now()
	start := end.AddDate(0, 0, -timeframeDays)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}
