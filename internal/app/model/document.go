package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// The three document variants are parallel on purpose: each owner kind has
// its own table, and (owner, document name) is unique so re-ingesting the
// same label updates the expiry date instead of duplicating the record.

// CompanyDocument is a fiscal/regulatory document owned by a company.
type CompanyDocument struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_company_documents_owner_name" json:"name"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	CompanyID uint      `gorm:"not null;uniqueIndex:idx_company_documents_owner_name" json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (CompanyDocument) TableName() string {
	return "company_documents"
}

func (d *CompanyDocument) BeforeSave(tx *gorm.DB) error {
	d.Name = strings.ToUpper(strings.TrimSpace(d.Name))
	return nil
}

type DriverDocument struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_driver_documents_owner_name" json:"name"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	DriverID  uint      `gorm:"not null;uniqueIndex:idx_driver_documents_owner_name" json:"driver_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Driver Driver `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
}

func (DriverDocument) TableName() string {
	return "driver_documents"
}

func (d *DriverDocument) BeforeSave(tx *gorm.DB) error {
	d.Name = strings.ToUpper(strings.TrimSpace(d.Name))
	return nil
}

type VehicleDocument struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_vehicle_documents_owner_name" json:"name"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	VehicleID uint      `gorm:"not null;uniqueIndex:idx_vehicle_documents_owner_name" json:"vehicle_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Vehicle Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (VehicleDocument) TableName() string {
	return "vehicle_documents"
}

func (d *VehicleDocument) BeforeSave(tx *gorm.DB) error {
	d.Name = strings.ToUpper(strings.TrimSpace(d.Name))
	return nil
}
