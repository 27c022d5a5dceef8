package members

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberFilter narrows the member list. Q matches full name, registration
// number or phone number; zero values mean "no filter".
type MemberFilter struct {
	Q                string
	SectorID         uint
	MembershipStatus string
	IsActive         *bool
	Limit            int
	Offset           int
}

// TransferCommand moves a member to another sector and records the move.
type TransferCommand struct {
	MemberID     uint
	ToSectorID   uint
	Reason       string
	Notes        string
	RecordedBy   string
	TransferDate time.Time
}

// initialRegistrationReason labels the history row written when a member is
// first registered.
const initialRegistrationReason = "Initial registration"

type MemberRepository interface {
	// CreateMember persists a new member inside one transaction: allocates
	// the registration number for the current year and writes the initial
	// sector history row.
	CreateMember(ctx context.Context, member *models.Member, recordedBy string) (*models.Member, error)
	// FindMemberByID retrieves one member with family and sector preloaded.
	FindMemberByID(ctx context.Context, id uint) (*models.Member, error)
	// ListMembers returns the filtered page of members plus the total count
	// before pagination.
	ListMembers(ctx context.Context, filter MemberFilter) ([]*models.Member, int64, error)
	// UpdateMember updates fields of a member identified by its ID.
	UpdateMember(ctx context.Context, id uint, updates map[string]interface{}) error
	// GetSectorHistory returns a member's sector history, newest first.
	GetSectorHistory(ctx context.Context, memberID uint, limit int) ([]*models.SectorHistory, error)
	// TransferSector atomically moves a member to a new sector and appends
	// the history row.
	TransferSector(ctx context.Context, cmd TransferCommand) error
	// BirthOrderTaken reports whether another member of the family already
	// uses the given birth order.
	BirthOrderTaken(ctx context.Context, familyID uint, birthOrder int, excludeMemberID uint) (bool, error)
	// ImportMembers registers a batch of members in a single all-or-nothing
	// transaction, creating missing sectors and families on the fly. On row
	// failures nothing is committed and the per-row errors are returned.
	ImportMembers(ctx context.Context, rows []StagedMemberRow, recordedBy string) ([]string, []ImportRowError, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (mr *memberRepository) CreateMember(ctx context.Context, member *models.Member, recordedBy string) (*models.Member, error) {
	err := mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		memberID, err := nextSequencedID(tx, &models.Member{}, "member_id", models.MemberIDPrefix)
		if err != nil {
			return err
		}
		member.MemberID = memberID

		if err := tx.Create(member).Error; err != nil {
			if isDuplicateKey(err) {
				return apperrors.NewConflictError("member with this email already exists", err)
			}
			return apperrors.NewDatabaseError("unable to create member", err)
		}

		history := models.SectorHistory{
			MemberID:     member.ID,
			FromSectorID: nil,
			ToSectorID:   member.CurrentSectorID,
			TransferDate: member.CreatedAt,
			Reason:       initialRegistrationReason,
			RecordedBy:   recordedBy,
		}
		if err := tx.Create(&history).Error; err != nil {
			return apperrors.NewDatabaseError("unable to record initial sector assignment", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (mr *memberRepository) FindMemberByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member

	err := mr.db.WithContext(ctx).
		Preload("Family").
		Preload("CurrentSector").
		First(&member, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewMemberNotFoundError()
		}
		return nil, apperrors.NewDatabaseError("failed to fetch member", err)
	}

	return &member, nil
}

func (mr *memberRepository) ListMembers(ctx context.Context, filter MemberFilter) ([]*models.Member, int64, error) {
	query := mr.db.WithContext(ctx).Model(&models.Member{})

	if filter.Q != "" {
		pattern := "%" + filter.Q + "%"
		query = query.Where("full_name LIKE ? OR member_id LIKE ? OR phone_number LIKE ?", pattern, pattern, pattern)
	}
	if filter.SectorID != 0 {
		query = query.Where("current_sector_id = ?", filter.SectorID)
	}
	if filter.MembershipStatus != "" {
		query = query.Where("membership_status = ?", filter.MembershipStatus)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("failed to count members", err)
	}

	var members []*models.Member
	err := query.
		Preload("Family").
		Preload("CurrentSector").
		Order("full_name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&members).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to fetch members", err)
	}

	return members, total, nil
}

func (mr *memberRepository) UpdateMember(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperrors.NewInvalidRequestError("no fields to update", nil)
	}

	result := mr.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return apperrors.NewConflictError("member with this email already exists", result.Error)
		}
		return apperrors.NewDatabaseError("unable to update member", result.Error)
	}

	if result.RowsAffected == 0 {
		return NewMemberNotFoundError()
	}

	return nil
}

func (mr *memberRepository) GetSectorHistory(ctx context.Context, memberID uint, limit int) ([]*models.SectorHistory, error) {
	var history []*models.SectorHistory

	err := mr.db.WithContext(ctx).
		Preload("FromSector").
		Preload("ToSector").
		Where("member_id = ?", memberID).
		Order("transfer_date DESC, id DESC").
		Limit(limit).
		Find(&history).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch sector history", err)
	}

	return history, nil
}

func (mr *memberRepository) TransferSector(ctx context.Context, cmd TransferCommand) error {
	return mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, cmd.MemberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewMemberNotFoundError()
			}
			return apperrors.NewDatabaseError("failed to lock member", err)
		}

		if member.CurrentSectorID == cmd.ToSectorID {
			return NewSameSectorTransferError()
		}

		fromSectorID := member.CurrentSectorID
		history := models.SectorHistory{
			MemberID:     member.ID,
			FromSectorID: &fromSectorID,
			ToSectorID:   cmd.ToSectorID,
			TransferDate: cmd.TransferDate,
			Reason:       cmd.Reason,
			Notes:        cmd.Notes,
			RecordedBy:   cmd.RecordedBy,
		}
		if err := tx.Create(&history).Error; err != nil {
			return apperrors.NewDatabaseError("unable to record sector transfer", err)
		}

		if err := tx.Model(&member).Update("current_sector_id", cmd.ToSectorID).Error; err != nil {
			return apperrors.NewDatabaseError("unable to move member to new sector", err)
		}

		return nil
	})
}

func (mr *memberRepository) BirthOrderTaken(ctx context.Context, familyID uint, birthOrder int, excludeMemberID uint) (bool, error) {
	var count int64

	query := mr.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("family_id = ? AND birth_order = ?", familyID, birthOrder)
	if excludeMemberID != 0 {
		query = query.Where("id <> ?", excludeMemberID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, apperrors.NewDatabaseError("failed to check birth order", err)
	}

	return count > 0, nil
}

// errImportAborted forces the surrounding transaction to roll back when any
// import row fails.
var errImportAborted = errors.New("import aborted")

func (mr *memberRepository) ImportMembers(ctx context.Context, rows []StagedMemberRow, recordedBy string) ([]string, []ImportRowError, error) {
	created := make([]string, 0, len(rows))
	var rowErrors []ImportRowError

	err := mr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			row := &rows[i]

			sector, err := getOrCreateSector(tx, row.SectorName)
			if err != nil {
				rowErrors = append(rowErrors, ImportRowError{Row: row.RowNumber, Message: err.Error()})
				continue
			}

			family, err := getOrCreateFamily(tx, sector.ID, row.FamilyName)
			if err != nil {
				rowErrors = append(rowErrors, ImportRowError{Row: row.RowNumber, Message: err.Error()})
				continue
			}

			var existing int64
			if err := tx.Model(&models.Member{}).
				Where("family_id = ? AND full_name = ?", family.ID, row.Member.FullName).
				Count(&existing).Error; err != nil {
				return apperrors.NewDatabaseError("failed to check for duplicate member", err)
			}
			if existing > 0 {
				rowErrors = append(rowErrors, ImportRowError{
					Row:     row.RowNumber,
					Message: fmt.Sprintf("member %q already exists in family %q", row.Member.FullName, family.FamilyName),
				})
				continue
			}

			memberID, err := nextSequencedID(tx, &models.Member{}, "member_id", models.MemberIDPrefix)
			if err != nil {
				return err
			}

			member := row.Member
			member.MemberID = memberID
			member.FamilyID = family.ID
			member.CurrentSectorID = sector.ID

			if err := tx.Create(&member).Error; err != nil {
				if isDuplicateKey(err) {
					rowErrors = append(rowErrors, ImportRowError{Row: row.RowNumber, Message: "duplicate email or registration number"})
					continue
				}
				return apperrors.NewDatabaseError("unable to create imported member", err)
			}

			history := models.SectorHistory{
				MemberID:     member.ID,
				ToSectorID:   sector.ID,
				TransferDate: member.CreatedAt,
				Reason:       initialRegistrationReason,
				RecordedBy:   recordedBy,
			}
			if err := tx.Create(&history).Error; err != nil {
				return apperrors.NewDatabaseError("unable to record initial sector assignment", err)
			}

			created = append(created, member.MemberID)
		}

		if len(rowErrors) > 0 {
			return errImportAborted
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, errImportAborted) {
			return nil, rowErrors, nil
		}
		return nil, nil, err
	}

	return created, nil, nil
}

func getOrCreateSector(tx *gorm.DB, name string) (*models.Sector, error) {
	var sector models.Sector
	err := tx.Where("name = ?", name).First(&sector).Error
	if err == nil {
		return &sector, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewDatabaseError("failed to look up sector", err)
	}

	sector = models.Sector{Name: name}
	if err := tx.Create(&sector).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to create sector", err)
	}
	return &sector, nil
}

func getOrCreateFamily(tx *gorm.DB, sectorID uint, familyName string) (*models.Family, error) {
	var family models.Family
	err := tx.Where("sector_id = ? AND family_name = ?", sectorID, familyName).First(&family).Error
	if err == nil {
		return &family, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewDatabaseError("failed to look up family", err)
	}

	family = models.Family{
		SectorID:     sectorID,
		FamilyName:   familyName,
		FamilyStatus: models.FamilyStatusActive,
	}
	if err := tx.Create(&family).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to create family", err)
	}
	return &family, nil
}

// nextSequencedID allocates the next PREFIX-YYYY-NNNNN identifier for the
// current year. The highest existing identifier is read under a row lock
// (FOR UPDATE on PostgreSQL, no-op on SQLite) so concurrent registrations
// cannot allocate the same number.
func nextSequencedID(tx *gorm.DB, model any, column, prefix string) (string, error) {
	year := time.Now().Year()
	yearPrefix := fmt.Sprintf("%s-%d-", prefix, year)

	var last string
	err := tx.Model(model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select(column).
		Where(column+" LIKE ?", yearPrefix+"%").
		Order(column + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", apperrors.NewDatabaseError("failed to read identifier sequence", err)
	}

	sequence := 1
	if last != "" {
		tail := strings.TrimPrefix(last, yearPrefix)
		parsed, err := strconv.Atoi(tail)
		if err != nil {
			return "", apperrors.NewInternalServerError("malformed identifier in sequence: "+last, err)
		}
		sequence = parsed + 1
	}

	return fmt.Sprintf("%s%05d", yearPrefix, sequence), nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
