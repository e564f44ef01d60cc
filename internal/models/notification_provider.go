package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationProvider configures one external delivery target (shoutrrr
// URL). Events are filtered per provider before sending.
type NotificationProvider struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"` // shoutrrr service name, e.g. "discord", "telegram", "smtp"
	URL     string `json:"url" gorm:"type:text"`
	Enabled bool   `json:"enabled" gorm:"default:true"`

	// Event preferences
	NotifyAuditCritical bool `json:"notify_audit_critical" gorm:"default:true"`
	NotifyBackups       bool `json:"notify_backups" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *NotificationProvider) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
