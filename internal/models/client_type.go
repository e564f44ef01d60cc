package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientType configures one category of beneficiary handled by the platform
// (e.g. "elderly", "disability"). Config holds a JSON document consumed by
// the dynamic form and rule engines, which live outside this service.
type ClientType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UUID        string    `json:"uuid" gorm:"uniqueIndex"`
	Code        string    `json:"code" gorm:"uniqueIndex"`
	Name        string    `json:"name"`
	Description string    `json:"description" gorm:"type:text"`
	Config      string    `json:"config" gorm:"type:text"`
	Enabled     bool      `json:"enabled" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *ClientType) BeforeCreate(tx *gorm.DB) (err error) {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	return
}
