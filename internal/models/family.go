package models

import (
	"time"

	"gorm.io/gorm"
)

// Family statuses
const (
	FamilyStatusActive    = "ACTIVE"
	FamilyStatusInactive  = "INACTIVE"
	FamilyStatusDissolved = "DISSOLVED"
)

type Family struct {
	gorm.Model
	SectorID     uint   `gorm:"not null;index" json:"sector_id"`
	FamilyName   string `gorm:"not null;index" json:"family_name"`
	FamilyStatus string `gorm:"not null;default:ACTIVE;index" json:"family_status"`

	// HeadOfFamilyID points at a member of this family; nullable because a
	// family is created before its members exist.
	HeadOfFamilyID *uint `json:"head_of_family_id"`

	DissolutionReason string     `json:"dissolution_reason"`
	DissolutionDate   *time.Time `json:"dissolution_date"`

	Street      string `json:"street"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	PhoneNumber string `json:"phone_number"`

	Sector       Sector   `gorm:"foreignKey:SectorID" json:"sector,omitempty"`
	HeadOfFamily *Member  `gorm:"foreignKey:HeadOfFamilyID" json:"head_of_family,omitempty"`
	Members      []Member `gorm:"foreignKey:FamilyID" json:"members,omitempty"`
}

func ValidFamilyStatus(status string) bool {
	switch status {
	case FamilyStatusActive, FamilyStatusInactive, FamilyStatusDissolved:
		return true
	}
	return false
}
