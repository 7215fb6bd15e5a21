package funding

// SampleRecords returns a fixed demonstration dataset used whenever no
// provider yields data.
func SampleRecords() []Record {
	return []Record{
		{
			CompanyName:   "Chainlink Labs",
			FundingAmount: 225000000,
			FundingRound:  "Series B",
			FundingDate:   "2024-01-15",
			Investors:     []string{"Andreessen Horowitz", "Sequoia Capital"},
			Sector:        "blockchain",
			Location:      "San Francisco, CA",
			CompanySize:   "100-250 employees",
			HiringPlans:   "Aggressive hiring for engineering and product roles",
			Description:   "Leading provider of decentralized oracle networks for smart contracts",
			KeyPeople:     []string{"Sergey Nazarov", "Steve Ellis"},
			Website:       "https://chainlinklabs.com",
			LinkedIn:      "https://linkedin.com/company/chainlink-labs",
		},
		{
			CompanyName:   "Polygon",
			FundingAmount: 450000000,
			FundingRound:  "Series C",
			FundingDate:   "2024-02-01",
			Investors:     []string{"SoftBank", "Tiger Global"},
			Sector:        "blockchain",
			Location:      "Mumbai, India",
			CompanySize:   "250-500 employees",
			HiringPlans:   "Expanding global team across engineering and business development",
			Description:   "Ethereum scaling solution providing faster and cheaper transactions",
			KeyPeople:     []string{"Sandeep Nailwal", "Jaynti Kanani"},
			Website:       "https://polygon.technology",
			LinkedIn:      "https://linkedin.com/company/polygon-technology",
		},
		{
			CompanyName:   "Avalanche",
			FundingAmount: 350000000,
			FundingRound:  "Series C",
			FundingDate:   "2024-03-01",
			Investors:     []string{"Polychain Capital", "Three Arrows Capital"},
			Sector:        "blockchain",
			Location:      "Singapore",
			CompanySize:   "100-250 employees",
			HiringPlans:   "Scaling engineering and research teams",
			Description:   "High-performance blockchain platform for decentralized applications",
			KeyPeople:     []string{"Emin Gün Sirer", "Kevin Sekniqi"},
			Website:       "https://avax.network",
			LinkedIn:      "https://linkedin.com/company/avalanche-avax",
		},
	}
}
