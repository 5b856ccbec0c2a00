package opportunity

import (
	"time"
)

// Opportunity is an earning task surfaced to the user, ranked by expected
// value.
type Opportunity struct {
	ID              string    `gorm:"column:id;primaryKey" json:"opportunity_id"`
	UserID          string    `gorm:"column:user_id;index" json:"user_id"`
	Platform        string    `gorm:"column:platform" json:"platform"`
	TaskDescription string    `gorm:"column:task_description" json:"task_description"`
	EstimatedProfit float64   `gorm:"column:estimated_profit" json:"estimated_profit"`
	TimeCommitment  string    `gorm:"column:time_commitment" json:"time_commitment"`
	Category        string    `gorm:"column:category" json:"category"`
	Trend           string    `gorm:"column:trend" json:"trend"`
	RankingScore    float64   `gorm:"column:ranking_score" json:"ranking_score"`
	URL             string    `gorm:"column:url" json:"url"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}

// Filters narrows an opportunity listing; part of the cache key.
type Filters struct {
	Category string `form:"category" json:"category,omitempty"`
	Trend    string `form:"trend" json:"trend,omitempty"`
}
