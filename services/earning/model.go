package earning

import (
	"time"
)

// DateLayout is the calendar-date wire format. Records carry a date with no
// time-of-day; lexicographic comparison of this layout matches chronological
// order, which the aggregator and cursor pagination rely on.
const DateLayout = "2006-01-02"

// Record is an immutable earning fact produced by manual entry or a platform
// sync. The aggregation engine never mutates input records.
type Record struct {
	ID         string    `gorm:"column:id;primaryKey" json:"earning_id"`
	UserID     string    `gorm:"column:user_id;index" json:"user_id"`
	Platform   string    `gorm:"column:platform" json:"platform"`
	Task       string    `gorm:"column:task" json:"task"`
	Amount     float64   `gorm:"column:amount" json:"amount"`
	Date       string    `gorm:"column:date" json:"date"`
	SourceType string    `gorm:"column:source_type" json:"source_type"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Record) TableName() string {
	return "earning_records"
}

// SourceTypes is the closed set of ingestion tags.
var SourceTypes = []string{"survey", "video", "gig", "freelance", "microtask", "testing"}

func ValidSourceType(s string) bool {
	for _, t := range SourceTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Filters narrows an earnings listing. Serialized (deterministically) into
// the cache key, so distinct filters cache independently.
type Filters struct {
	Platform   string `form:"platform" json:"platform,omitempty"`
	SourceType string `form:"source_type" json:"source_type,omitempty"`
	From       string `form:"from" json:"from,omitempty"`
	To         string `form:"to" json:"to,omitempty"`
	Limit      int    `form:"limit,default=20" json:"limit,omitempty"`
	Cursor     string `form:"cursor" json:"cursor,omitempty"`
}

type AddInput struct {
	Platform   string  `json:"platform" binding:"required"`
	Task       string  `json:"task" binding:"required"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date" binding:"required"`
	SourceType string  `json:"source_type" binding:"required"`
}
