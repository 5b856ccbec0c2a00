package platform

import "time"

type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
)

// Connection links a user to a supported platform and tracks the last time a
// sync pulled earnings from it.
type Connection struct {
	ID           string           `gorm:"column:id;primaryKey" json:"id"`
	UserID       string           `gorm:"column:user_id;index" json:"user_id"`
	PlatformID   string           `gorm:"column:platform_id" json:"platform_id"`
	PlatformName string           `gorm:"column:platform_name" json:"platform_name"`
	Status       ConnectionStatus `gorm:"column:status" json:"status"`
	LastSyncedAt *time.Time       `gorm:"column:last_synced_at" json:"last_synced_at,omitempty"`
	CreatedAt    time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

func (Connection) TableName() string {
	return "platform_connections"
}
