package funding

// Record is a normalized company funding snapshot shared by all providers.
type Record struct {
	CompanyName   string   `json:"company_name"`
	FundingAmount float64  `json:"funding_amount"`
	FundingRound  string   `json:"funding_round"`
	FundingDate   string   `json:"funding_date"`
	Investors     []string `json:"investors,omitempty"`
	Sector        string   `json:"sector,omitempty"`
	Location      string   `json:"location,omitempty"`
	CompanySize   string   `json:"company_size,omitempty"`
	HiringPlans   string   `json:"hiring_plans,omitempty"`
	Description   string   `json:"description,omitempty"`
	KeyPeople     []string `json:"key_people,omitempty"`
	Website       string   `json:"website,omitempty"`
	LinkedIn      string   `json:"linkedin,omitempty"`
}

// Query describes a funding-round search shared by all providers.
type Query struct {
	Sector           string
	MinFundingAmount float64
	TimeframeDays    int
}

const (
	DefaultSector        = "blockchain"
	DefaultTimeframeDays = 90
)

func (q Query) withDefaults() Query {
	if q.Sector == "" {
		q.Sector = DefaultSector
	}
	if q.TimeframeDays <= 0 {
		q.TimeframeDays = DefaultTimeframeDays
	}
	return q
}

// Provider is an external funding-data API.
type Provider interface {
	Fetch(q Query) ([]Record, error)
	Name() string
}
