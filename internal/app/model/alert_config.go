package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// AlertConfig maps a canonical document category to its alert lead time.
// Categories without a row fall back to 30 days.
type AlertConfig struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	DocumentName string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"document_name"`
	LeadTimeDays int       `gorm:"not null;default:30" json:"lead_time_days"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AlertConfig) TableName() string {
	return "alert_configs"
}

func (c *AlertConfig) BeforeSave(tx *gorm.DB) error {
	c.DocumentName = strings.ToUpper(strings.TrimSpace(c.DocumentName))
	return nil
}
