package model

import (
	"strings"
	"time"

	"github.com/frotadocs/frotadocs-backend/pkg/docid"
	"gorm.io/gorm"
)

// Driver belongs to exactly one company. The CNH (license number) is
// optional but unique when present, so it is kept nullable.
type Driver struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	CPF       string    `gorm:"type:varchar(14);uniqueIndex;not null" json:"cpf"` // stored formatted NNN.NNN.NNN-NN
	CNH       *string   `gorm:"type:varchar(20);uniqueIndex" json:"cnh,omitempty"`
	Operation string    `gorm:"type:varchar(120)" json:"operation,omitempty"`
	CompanyID uint      `gorm:"not null;index" json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company   Company          `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Documents []DriverDocument `gorm:"foreignKey:DriverID" json:"documents,omitempty"`
}

func (Driver) TableName() string {
	return "drivers"
}

func (d *Driver) BeforeSave(tx *gorm.DB) error {
	formatted, err := docid.FormatCPF(d.CPF)
	if err != nil {
		return err
	}
	d.CPF = formatted
	d.Name = strings.ToUpper(strings.TrimSpace(d.Name))
	d.Operation = strings.ToUpper(strings.TrimSpace(d.Operation))
	return nil
}
