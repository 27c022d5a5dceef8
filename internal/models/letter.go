package models

import (
	"time"

	"gorm.io/gorm"
)

// Letter statuses
const (
	LetterStatusDraft  = "DRAFT"
	LetterStatusIssued = "ISSUED"
)

// LetterNoPrefix is the prefix of every letter number, followed by the issue
// year and a zero-padded per-year sequence: LTR-2025-00007.
const LetterNoPrefix = "LTR"

// LetterTemplate holds a reusable form-letter body. The subject and body are
// text/template sources rendered against a member context at generation time.
type LetterTemplate struct {
	gorm.Model
	Name        string `gorm:"not null;uniqueIndex" json:"name"`
	Subject     string `gorm:"not null" json:"subject"`
	Body        string `gorm:"not null" json:"body"`
	Description string `json:"description"`
}

// Letter is a rendered instance of a template for one member. The rendered
// subject/body are frozen at generation time so later template edits do not
// change issued letters.
type Letter struct {
	gorm.Model
	LetterNo   string `gorm:"not null;uniqueIndex" json:"letter_no"`
	TemplateID uint   `gorm:"not null;index" json:"template_id"`
	MemberID   uint   `gorm:"not null;index" json:"member_id"`

	Subject string `gorm:"not null" json:"subject"`
	Body    string `gorm:"not null" json:"body"`

	Status   string     `gorm:"not null;default:DRAFT" json:"status"`
	IssuedAt *time.Time `json:"issued_at"`

	Template LetterTemplate `gorm:"foreignKey:TemplateID" json:"-"`
	Member   Member         `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}
