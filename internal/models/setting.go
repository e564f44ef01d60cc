package models

import "time"

// Setting is a key/value configuration row edited from the console's
// system-configuration screen.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex"`
	Value     string    `json:"value" gorm:"type:text"`
	Category  string    `json:"category"`
	Type      string    `json:"type"` // "string", "bool", "int", "json"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
