package opportunity

import (
	"fmt"
	"math/rand"
	"strings"
)

// fallbackCatalog is the synthetic opportunity set served when the record
// store is unreachable.
var fallbackCatalog = []Opportunity{
	{
		Platform:        "UserTesting",
		TaskDescription: "Test mobile apps and websites for usability issues",
		EstimatedProfit: 30,
		TimeCommitment:  "20-30 minutes",
		Category:        "testing",
		Trend:           "hot",
	},
	{
		Platform:        "Respondent",
		TaskDescription: "Participate in high-paying research studies",
		EstimatedProfit: 150,
		TimeCommitment:  "1-2 hours",
		Category:        "research",
		Trend:           "trending",
	},
	{
		Platform:        "Prolific",
		TaskDescription: "Academic research participation",
		EstimatedProfit: 25,
		TimeCommitment:  "30-45 minutes",
		Category:        "research",
		Trend:           "stable",
	},
	{
		Platform:        "Clickworker",
		TaskDescription: "AI training data creation and validation",
		EstimatedProfit: 12,
		TimeCommitment:  "10-15 minutes",
		Category:        "microtask",
		Trend:           "new",
	},
	{
		Platform:        "Appen",
		TaskDescription: "Language data collection and annotation",
		EstimatedProfit: 18,
		TimeCommitment:  "25-35 minutes",
		Category:        "microtask",
		Trend:           "stable",
	},
	{
		Platform:        "Lionbridge",
		TaskDescription: "Search engine evaluation tasks",
		EstimatedProfit: 22,
		TimeCommitment:  "30-40 minutes",
		Category:        "evaluation",
		Trend:           "trending",
	},
}

// generateFallback stamps the static catalog with per-user IDs and a ranking
// score in [7.0, 10.0).
func generateFallback(userID string, r *rand.Rand) []*Opportunity {
	out := make([]*Opportunity, 0, len(fallbackCatalog))
	for i, base := range fallbackCatalog {
		opp := base
		opp.ID = fmt.Sprintf("opp%d", i+1)
		opp.UserID = userID
		opp.RankingScore = float64(int((r.Float64()*3+7)*10)) / 10
		opp.URL = fmt.Sprintf("https://%s.com", strings.ReplaceAll(strings.ToLower(base.Platform), " ", ""))
		out = append(out, &opp)
	}
	return out
}
