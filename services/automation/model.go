package automation

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
)

// Automation is a user-configured recurring earning routine. Rules is a
// free-form document whose shape depends on the automation kind (minimum
// payout, categories, idle-time requirements, ...).
type Automation struct {
	ID          string         `gorm:"column:id;primaryKey" json:"id"`
	UserID      string         `gorm:"column:user_id;index" json:"user_id"`
	Name        string         `gorm:"column:name" json:"name"`
	Description string         `gorm:"column:description" json:"description"`
	Platform    string         `gorm:"column:platform" json:"platform"`
	Status      Status         `gorm:"column:status" json:"status"`
	LastRun     *time.Time     `gorm:"column:last_run" json:"last_run,omitempty"`
	Earnings    float64        `gorm:"column:earnings" json:"earnings"`
	Frequency   string         `gorm:"column:frequency" json:"frequency"`
	Rules       datatypes.JSON `gorm:"column:rules" json:"rules,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Automation) TableName() string {
	return "automations"
}

type CreateInput struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Platform    string         `json:"platform" binding:"required"`
	Frequency   string         `json:"frequency"`
	Rules       datatypes.JSON `json:"rules"`
}
