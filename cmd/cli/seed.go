package main

import (
	"context"
	"fmt"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	"gorm.io/gorm"
)

// defaultSectorCount matches the congregation's historical subdivision.
const defaultSectorCount = 5

var defaultTemplates = []models.LetterTemplate{
	{
		Name:        "membership-certificate",
		Subject:     "Membership Certificate - {{.FullName}}",
		Body:        "This is to certify that {{.FullName}} ({{.MemberID}}), born in {{.PlaceOfBirth}} on {{.DateOfBirth}}, is a registered member of sector {{.SectorName}} with membership status {{.MembershipStatus}} as of {{.Today}}.",
		Description: "General proof-of-membership letter",
	},
	{
		Name:        "baptism-certificate",
		Subject:     "Baptism Certificate - {{.FullName}}",
		Body:        "This is to certify that {{.FullName}} ({{.MemberID}}) of the {{.FamilyName}} family was baptized on {{.BaptismDate}}.",
		Description: "Issued to baptized members; requires a recorded baptism date",
	},
	{
		Name:        "transfer-letter",
		Subject:     "Letter of Transfer - {{.FullName}}",
		Body:        "We hereby commend {{.FullName}} ({{.MemberID}}), a member in good standing of sector {{.SectorName}}, to the fellowship of the receiving congregation. Issued {{.Today}}.",
		Description: "Accompanies a member transferring to another congregation",
	},
}

// Seed inserts the baseline reference data. It is idempotent: rows that
// already exist by name are left untouched.
func Seed(ctx context.Context, db *gorm.DB, logger *log.Logger) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 1; i <= defaultSectorCount; i++ {
			sector := models.Sector{Name: fmt.Sprintf("Sektor %d", i)}
			if err := tx.Where("name = ?", sector.Name).FirstOrCreate(&sector).Error; err != nil {
				return fmt.Errorf("seed sector %q: %w", sector.Name, err)
			}
		}
		logger.Info("Sectors seeded", "count", defaultSectorCount)

		for _, template := range defaultTemplates {
			record := template
			if err := tx.Where("name = ?", record.Name).FirstOrCreate(&record).Error; err != nil {
				return fmt.Errorf("seed template %q: %w", record.Name, err)
			}
		}
		logger.Info("Letter templates seeded", "count", len(defaultTemplates))

		return nil
	})
}
