package sectors

import (
	"context"
	"errors"

	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
)

// SectorCounts holds the active-family and active-member totals of one sector.
type SectorCounts struct {
	FamilyCount int64
	MemberCount int64
}

type SectorRepository interface {
	// CreateSector persists a new sector.
	CreateSector(ctx context.Context, sector *models.Sector) (*models.Sector, error)
	// FindSectorByID retrieves one sector without associations.
	FindSectorByID(ctx context.Context, id uint) (*models.Sector, error)
	// FindSectorDetail retrieves one sector with its families and the first
	// memberPreviewLimit active members.
	FindSectorDetail(ctx context.Context, id uint, memberPreviewLimit int) (*models.Sector, error)
	// GetAllSectors returns every sector ordered by name.
	GetAllSectors(ctx context.Context) ([]*models.Sector, error)
	// UpdateSector updates fields of a sector identified by its ID.
	UpdateSector(ctx context.Context, id uint, updates map[string]interface{}) error
	// CountsForSector returns active family and member counts for one sector.
	CountsForSector(ctx context.Context, id uint) (SectorCounts, error)
}

type sectorRepository struct {
	db *gorm.DB
}

func NewSectorRepository(db *gorm.DB) SectorRepository {
	return &sectorRepository{db: db}
}

func (sr *sectorRepository) CreateSector(ctx context.Context, sector *models.Sector) (*models.Sector, error) {
	if err := sr.db.WithContext(ctx).Create(sector).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("sector with this name already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create sector", err)
	}
	return sector, nil
}

func (sr *sectorRepository) FindSectorByID(ctx context.Context, id uint) (*models.Sector, error) {
	var sector models.Sector
	if err := sr.db.WithContext(ctx).First(&sector, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("sector not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch sector", err)
	}
	return &sector, nil
}

func (sr *sectorRepository) FindSectorDetail(ctx context.Context, id uint, memberPreviewLimit int) (*models.Sector, error) {
	var sector models.Sector

	err := sr.db.WithContext(ctx).
		Preload("Families", func(db *gorm.DB) *gorm.DB {
			return db.Order("family_name ASC")
		}).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).
				Order("full_name ASC").
				Limit(memberPreviewLimit)
		}).
		First(&sector, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("sector not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch sector", err)
	}

	return &sector, nil
}

func (sr *sectorRepository) GetAllSectors(ctx context.Context) ([]*models.Sector, error) {
	var sectors []*models.Sector
	if err := sr.db.WithContext(ctx).Order("name ASC").Find(&sectors).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch sectors", err)
	}
	return sectors, nil
}

func (sr *sectorRepository) UpdateSector(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperrors.NewInvalidRequestError("no fields to update", nil)
	}

	result := sr.db.WithContext(ctx).
		Model(&models.Sector{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return apperrors.NewConflictError("sector with this name already exists", result.Error)
		}
		return apperrors.NewDatabaseError("unable to update sector", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("sector not found", nil)
	}

	return nil
}

func (sr *sectorRepository) CountsForSector(ctx context.Context, id uint) (SectorCounts, error) {
	var counts SectorCounts

	if err := sr.db.WithContext(ctx).
		Model(&models.Family{}).
		Where("sector_id = ? AND family_status = ?", id, models.FamilyStatusActive).
		Count(&counts.FamilyCount).Error; err != nil {
		return counts, apperrors.NewDatabaseError("failed to count families", err)
	}

	if err := sr.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("current_sector_id = ? AND is_active = ?", id, true).
		Count(&counts.MemberCount).Error; err != nil {
		return counts, apperrors.NewDatabaseError("failed to count members", err)
	}

	return counts, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
