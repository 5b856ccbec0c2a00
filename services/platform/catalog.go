package platform

import "github.com/gosimple/slug"

// Info describes one platform the dashboard knows how to integrate with.
type Info struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	AvgPayout      float64 `json:"avg_payout"`
	Difficulty     string  `json:"difficulty"`
	TimeCommitment string  `json:"time_commitment"`
	APISupported   bool    `json:"api_supported"`
}

// catalog is the static integration directory. IDs are derived from the
// display name so they stay stable across releases.
var catalog = []Info{
	{Name: "Survey Junkie", Category: "surveys", AvgPayout: 15, Difficulty: "easy", TimeCommitment: "low", APISupported: true},
	{Name: "Swagbucks", Category: "mixed", AvgPayout: 10, Difficulty: "easy", TimeCommitment: "low", APISupported: true},
	{Name: "TaskRabbit", Category: "gigs", AvgPayout: 50, Difficulty: "medium", TimeCommitment: "high", APISupported: false},
	{Name: "Upwork", Category: "freelance", AvgPayout: 75, Difficulty: "high", TimeCommitment: "high", APISupported: true},
	{Name: "UserTesting", Category: "testing", AvgPayout: 30, Difficulty: "medium", TimeCommitment: "medium", APISupported: true},
}

func init() {
	for i := range catalog {
		catalog[i].ID = slug.Make(catalog[i].Name)
	}
}

// Catalog returns the supported platform directory.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by its slug ID.
func Lookup(id string) (Info, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Info{}, false
}
