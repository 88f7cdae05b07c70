package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Vehicle struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Plate     string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"plate"`
	Operation string    `gorm:"type:varchar(120)" json:"operation,omitempty"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company   Company           `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Documents []VehicleDocument `gorm:"foreignKey:VehicleID" json:"documents,omitempty"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeSave(tx *gorm.DB) error {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	v.Operation = strings.ToUpper(strings.TrimSpace(v.Operation))
	return nil
}
