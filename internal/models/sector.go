package models

import (
	"time"

	"gorm.io/gorm"
)

// Sector is a geographic/pastoral subdivision of the congregation. Families
// and members always belong to exactly one sector.
type Sector struct {
	gorm.Model
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Description string `json:"description"`

	Families []Family `gorm:"foreignKey:SectorID" json:"families,omitempty"`
	Members  []Member `gorm:"foreignKey:CurrentSectorID" json:"members,omitempty"`
}

// SectorHistory records every sector a member has belonged to, including the
// initial assignment at registration (FromSectorID nil).
type SectorHistory struct {
	gorm.Model
	MemberID     uint      `gorm:"not null;index" json:"member_id"`
	FromSectorID *uint     `json:"from_sector_id"`
	ToSectorID   uint      `gorm:"not null" json:"to_sector_id"`
	TransferDate time.Time `gorm:"not null;index" json:"transfer_date"`
	Reason       string    `json:"reason"`
	Notes        string    `json:"notes"`
	RecordedBy   string    `gorm:"not null;default:system" json:"recorded_by"`

	Member     Member  `gorm:"foreignKey:MemberID" json:"-"`
	FromSector *Sector `gorm:"foreignKey:FromSectorID" json:"from_sector,omitempty"`
	ToSector   Sector  `gorm:"foreignKey:ToSectorID" json:"to_sector,omitempty"`
}
