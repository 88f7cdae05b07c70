package model

import (
	"strings"
	"time"

	"github.com/frotadocs/frotadocs-backend/pkg/docid"
	"gorm.io/gorm"
)

type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "active"
	CompanyInactive CompanyStatus = "inactive"
)

// Company is a transport company (transportadora). Companies are never
// deleted, only deactivated.
type Company struct {
	ID        uint          `gorm:"primarykey" json:"id"`
	LegalName string        `gorm:"not null;index" json:"legal_name"`
	CNPJ      string        `gorm:"type:varchar(18);uniqueIndex;not null" json:"cnpj"` // stored formatted NN.NNN.NNN/NNNN-NN
	Status    CompanyStatus `gorm:"type:varchar(20);default:'active';not null" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Drivers   []Driver          `gorm:"foreignKey:CompanyID" json:"drivers,omitempty"`
	Vehicles  []Vehicle         `gorm:"foreignKey:CompanyID" json:"vehicles,omitempty"`
	Documents []CompanyDocument `gorm:"foreignKey:CompanyID" json:"documents,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

// BeforeSave normalizes the CNPJ to its canonical punctuated form and
// uppercases the legal name. Malformed identifiers abort the write.
func (c *Company) BeforeSave(tx *gorm.DB) error {
	formatted, err := docid.FormatCNPJ(c.CNPJ)
	if err != nil {
		return err
	}
	c.CNPJ = formatted
	c.LegalName = strings.ToUpper(strings.TrimSpace(c.LegalName))
	if c.Status == "" {
		c.Status = CompanyActive
	}
	return nil
}
