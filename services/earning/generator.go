package earning

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

var (
	fallbackPlatforms = []string{
		"Survey Junkie", "Swagbucks", "TaskRabbit", "Upwork",
		"Amazon MTurk", "UserTesting", "Clickworker",
	}
	fallbackTasks = []string{
		"Consumer Survey", "Watch Videos", "Furniture Assembly", "Data Entry",
		"Content Moderation", "Website Testing", "Product Review",
		"Transcription", "Image Tagging", "Research Study",
	}
)

// Generator produces synthetic earning records, used as fallback data when
// the record store is unreachable and by the platform sync task.
type Generator struct {
	rand *rand.Rand
	now  func() time.Time
}

func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		now:  time.Now,
	}
}

// Generate synthesises count records for userID, dated within the trailing
// 30 days so every analytics window has data to show.
func (g *Generator) Generate(userID string, count int) []*Record {
	records := make([]*Record, 0, count)
	now := g.now().UTC()

	for i := 0; i < count; i++ {
		daysAgo := g.rand.Intn(30)
		records = append(records, &Record{
			ID:         fmt.Sprintf("e%d", i+1),
			UserID:     userID,
			Platform:   fallbackPlatforms[g.rand.Intn(len(fallbackPlatforms))],
			Task:       fallbackTasks[g.rand.Intn(len(fallbackTasks))],
			Amount:     roundCents(g.rand.Float64()*100 + 5),
			Date:       now.AddDate(0, 0, -daysAgo).Format(DateLayout),
			SourceType: SourceTypes[g.rand.Intn(len(SourceTypes))],
		})
	}

	return records
}

// GenerateForPlatform synthesises a sync batch pinned to one platform.
func (g *Generator) GenerateForPlatform(userID, platform string, count int) []*Record {
	records := g.Generate(userID, count)
	for _, r := range records {
		r.Platform = platform
	}
	return records
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
