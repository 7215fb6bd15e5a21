package funding

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type DealroomClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewDealroomClient(apiKey string) *DealroomClient {
	return &DealroomClient{
		apiKey:     apiKey,
		baseURL:    "https://api.dealroom.co/v1",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *DealroomClient) Name() string {
	return "Dealroom"
}

func (c *DealroomClient) Fetch(q Query) ([]Record, error) {
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
		return nil, fmt.Errorf("dealroom request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dealroom fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dealroom fetch: unexpected status %d", resp.StatusCode)
	}

	var raw dealroomResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("dealroom decode: %w", err)
	}

	records := make([]Record, 0, len(raw.Companies))
	for _, company := range raw.Companies {
		records = append(records, Record{
			CompanyName:   company.Name,
			FundingAmount: company.LatestFunding.AmountUSD,
			FundingRound:  company.LatestFunding.RoundType,
			FundingDate:   company.LatestFunding.AnnouncedDate,
			Investors:     company.LatestFunding.Investors,
			Sector:        q.Sector,
			Location:      company.City,
			CompanySize:   company.EmployeeCount,
			Description:   company.Description,
			KeyPeople:     company.Founders,
			Website:       company.Website,
			LinkedIn:      company.LinkedInURL,
		})
	}

	return records, nil
}

type dealroomResponse struct {
	Companies []dealroomCompany `json:"companies"`
}

type dealroomCompany struct {
	Name          string          `json:"name"`
	City          string          `json:"city"`
	EmployeeCount string          `json:"employee_count"`
	Description   string          `json:"description"`
	Founders      []string        `json:"founders"`
	Website       string          `json:"website"`
	LinkedInURL   string          `json:"linkedin_url"`
	LatestFunding dealroomFunding `json:"latest_funding"`
}

type dealroomFunding struct {
	AmountUSD     float64  `json:"amount_usd"`
	RoundType     string   `json:"round_type"`
	AnnouncedDate string   `json:"announced_date"`
	Investors     []string `json:"investors"`
}
