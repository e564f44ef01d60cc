package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRule stores the configuration for one rule consumed by the
// external rule-evaluation engine. Conditions and Actions are opaque JSON
// documents; this service validates their shape but never evaluates them.
type BusinessRule struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UUID           string    `json:"uuid" gorm:"uniqueIndex"`
	Name           string    `json:"name" gorm:"uniqueIndex"`
	Description    string    `json:"description" gorm:"type:text"`
	ClientTypeCode string    `json:"client_type_code" gorm:"index"`
	Priority       int       `json:"priority" gorm:"default:0"`
	Enabled        bool      `json:"enabled" gorm:"default:true"`
	Conditions     string    `json:"conditions" gorm:"type:text"`
	Actions        string    `json:"actions" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r *BusinessRule) BeforeCreate(tx *gorm.DB) (err error) {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return
}
