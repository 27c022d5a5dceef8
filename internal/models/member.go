package models

import (
	"time"

	"gorm.io/gorm"
)

// Genders
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Family roles
const (
	FamilyRoleHusband = "HUSBAND"
	FamilyRoleWife    = "WIFE"
	FamilyRoleChild   = "CHILD"
	FamilyRoleParent  = "PARENT"
	FamilyRoleOther   = "OTHER"
)

// Membership statuses
const (
	MembershipStatusFull        = "FULL"
	MembershipStatusPreparation = "PREPARATION"
	MembershipStatusTransferIn  = "TRANSFER_IN"
	MembershipStatusTransferOut = "TRANSFER_OUT"
)

// Blood types
const (
	BloodTypeAPositive  = "A+"
	BloodTypeANegative  = "A-"
	BloodTypeBPositive  = "B+"
	BloodTypeBNegative  = "B-"
	BloodTypeABPositive = "AB+"
	BloodTypeABNegative = "AB-"
	BloodTypeOPositive  = "O+"
	BloodTypeONegative  = "O-"
)

// MemberIDPrefix is the prefix of every registration number, followed by the
// registration year and a zero-padded per-year sequence: NIJ-2025-00042.
const MemberIDPrefix = "NIJ"

type Member struct {
	gorm.Model
	MemberID        string `gorm:"not null;uniqueIndex" json:"member_id"`
	FamilyID        uint   `gorm:"not null;index" json:"family_id"`
	CurrentSectorID uint   `gorm:"not null;index" json:"current_sector_id"`

	FullName   string `gorm:"not null;index" json:"full_name"`
	Gender     string `gorm:"type:char(1);not null" json:"gender"`
	FamilyRole string `gorm:"not null" json:"family_role"`

	// BirthOrder is set if and only if FamilyRole is CHILD, and is unique
	// among the children of one family.
	BirthOrder *int `json:"birth_order"`

	BloodType    string    `json:"blood_type"`
	DateOfBirth  time.Time `gorm:"not null" json:"date_of_birth"`
	PlaceOfBirth string    `json:"place_of_birth"`
	PhoneNumber  string    `gorm:"index" json:"phone_number"`
	Email        *string   `gorm:"uniqueIndex" json:"email"`
	Street       string    `json:"street"`
	City         string    `json:"city"`

	BaptismDate  *time.Time `json:"baptism_date"`
	SidiDate     *time.Time `json:"sidi_date"`
	MarriageDate *time.Time `json:"marriage_date"`

	MembershipStatus string `gorm:"not null;default:FULL;index" json:"membership_status"`

	IsActive       bool   `gorm:"not null;default:true;index" json:"is_active"`
	InactiveReason string `json:"inactive_reason"`

	IsDeceased     bool       `gorm:"not null;default:false" json:"is_deceased"`
	DeceasedDate   *time.Time `json:"deceased_date"`
	DeceasedReason string     `json:"deceased_reason"`

	PhotoPath string `json:"photo_path"`

	Family        Family          `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
	CurrentSector Sector          `gorm:"foreignKey:CurrentSectorID" json:"current_sector,omitempty"`
	SectorHistory []SectorHistory `gorm:"foreignKey:MemberID" json:"sector_history,omitempty"`
}

// Age returns the member's age in whole years at the given reference time,
// or the age at death for deceased members.
func (m *Member) Age(at time.Time) int {
	ref := at
	if m.IsDeceased && m.DeceasedDate != nil {
		ref = *m.DeceasedDate
	}
	years := ref.Year() - m.DateOfBirth.Year()
	anniversary := time.Date(ref.Year(), m.DateOfBirth.Month(), m.DateOfBirth.Day(), 0, 0, 0, 0, time.UTC)
	if anniversary.After(ref) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}

func ValidFamilyRole(role string) bool {
	switch role {
	case FamilyRoleHusband, FamilyRoleWife, FamilyRoleChild, FamilyRoleParent, FamilyRoleOther:
		return true
	}
	return false
}

func ValidMembershipStatus(status string) bool {
	switch status {
	case MembershipStatusFull, MembershipStatusPreparation, MembershipStatusTransferIn, MembershipStatusTransferOut:
		return true
	}
	return false
}

func ValidBloodType(bt string) bool {
	switch bt {
	case BloodTypeAPositive, BloodTypeANegative, BloodTypeBPositive, BloodTypeBNegative,
		BloodTypeABPositive, BloodTypeABNegative, BloodTypeOPositive, BloodTypeONegative:
		return true
	}
	return false
}
