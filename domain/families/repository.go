package families

import (
	"context"
	"errors"

	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
)

// FamilyFilter narrows the family list. Q matches family name, street or
// city; zero values mean "no filter".
type FamilyFilter struct {
	Q        string
	SectorID uint
	Status   string
	Limit    int
	Offset   int
}

type FamilyRepository interface {
	// CreateFamily persists a new family.
	CreateFamily(ctx context.Context, family *models.Family) (*models.Family, error)
	// FindFamilyByID retrieves one family with its sector.
	FindFamilyByID(ctx context.Context, id uint) (*models.Family, error)
	// FindFamilyDetail retrieves one family with its sector and all members
	// ordered by role then birth order.
	FindFamilyDetail(ctx context.Context, id uint) (*models.Family, error)
	// ListFamilies returns the filtered page of families plus the total count
	// before pagination.
	ListFamilies(ctx context.Context, filter FamilyFilter) ([]*models.Family, int64, error)
	// UpdateFamily updates fields of a family identified by its ID.
	UpdateFamily(ctx context.Context, id uint, updates map[string]interface{}) error
	// ActiveMemberCounts maps each given family ID to its active member count.
	ActiveMemberCounts(ctx context.Context, familyIDs []uint) (map[uint]int64, error)
}

type familyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (fr *familyRepository) CreateFamily(ctx context.Context, family *models.Family) (*models.Family, error) {
	if err := fr.db.WithContext(ctx).Create(family).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to create family", err)
	}
	return family, nil
}

func (fr *familyRepository) FindFamilyByID(ctx context.Context, id uint) (*models.Family, error) {
	var family models.Family
	if err := fr.db.WithContext(ctx).Preload("Sector").First(&family, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("family not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch family", err)
	}
	return &family, nil
}

func (fr *familyRepository) FindFamilyDetail(ctx context.Context, id uint) (*models.Family, error) {
	var family models.Family

	err := fr.db.WithContext(ctx).
		Preload("Sector").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("family_role ASC, birth_order ASC, full_name ASC")
		}).
		First(&family, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("family not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch family", err)
	}

	return &family, nil
}

func (fr *familyRepository) ListFamilies(ctx context.Context, filter FamilyFilter) ([]*models.Family, int64, error) {
	query := fr.db.WithContext(ctx).Model(&models.Family{})

	if filter.Q != "" {
		pattern := "%" + filter.Q + "%"
		query = query.Where("family_name LIKE ? OR street LIKE ? OR city LIKE ?", pattern, pattern, pattern)
	}
	if filter.SectorID != 0 {
		query = query.Where("sector_id = ?", filter.SectorID)
	}
	if filter.Status != "" {
		query = query.Where("family_status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("failed to count families", err)
	}

	var families []*models.Family
	err := query.
		Preload("Sector").
		Order("family_name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&families).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to fetch families", err)
	}

	return families, total, nil
}

func (fr *familyRepository) UpdateFamily(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperrors.NewInvalidRequestError("no fields to update", nil)
	}

	result := fr.db.WithContext(ctx).
		Model(&models.Family{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return apperrors.NewDatabaseError("unable to update family", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("family not found", nil)
	}

	return nil
}

func (fr *familyRepository) ActiveMemberCounts(ctx context.Context, familyIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(familyIDs))
	if len(familyIDs) == 0 {
		return counts, nil
	}

	type row struct {
		FamilyID uint
		Total    int64
	}

	var rows []row
	err := fr.db.WithContext(ctx).
		Model(&models.Member{}).
		Select("family_id, COUNT(*) as total").
		Where("family_id IN ? AND is_active = ?", familyIDs, true).
		Group("family_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("failed to count family members", err)
	}

	for _, r := range rows {
		counts[r.FamilyID] = r.Total
	}
	return counts, nil
}
