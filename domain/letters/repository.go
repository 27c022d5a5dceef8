package letters

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

// LetterFilter narrows the letter list. Zero values mean "no filter".
type LetterFilter struct {
	MemberID uint
	Status   string
	Limit    int
	Offset   int
}

type LetterRepository interface {
	// CreateTemplate persists a new letter template.
	CreateTemplate(ctx context.Context, template *models.LetterTemplate) (*models.LetterTemplate, error)
	// FindTemplateByID retrieves one template.
	FindTemplateByID(ctx context.Context, id uint) (*models.LetterTemplate, error)
	// GetAllTemplates returns every template ordered by name.
	GetAllTemplates(ctx context.Context) ([]*models.LetterTemplate, error)
	// UpdateTemplate updates fields of a template identified by its ID.
	UpdateTemplate(ctx context.Context, id uint, updates map[string]interface{}) error
	// FindMemberContext loads the member with family and sector for template
	// rendering.
	FindMemberContext(ctx context.Context, memberID uint) (*models.Member, error)
	// CreateLetter persists a rendered letter, allocating its letter number
	// inside the same transaction.
	CreateLetter(ctx context.Context, letter *models.Letter) (*models.Letter, error)
	// FindLetterByID retrieves one letter with its member.
	FindLetterByID(ctx context.Context, id uint) (*models.Letter, error)
	// ListLetters returns the filtered page of letters plus the total count
	// before pagination, newest first.
	ListLetters(ctx context.Context, filter LetterFilter) ([]*models.Letter, int64, error)
	// IssueLetter marks a DRAFT letter ISSUED; issuing twice is a conflict.
	IssueLetter(ctx context.Context, id uint, issuedAt time.Time) error
}

type letterRepository struct {
	db *gorm.DB
}

func NewLetterRepository(db *gorm.DB) LetterRepository {
	return &letterRepository{db: db}
}

func (lr *letterRepository) CreateTemplate(ctx context.Context, template *models.LetterTemplate) (*models.LetterTemplate, error) {
	if err := lr.db.WithContext(ctx).Create(template).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.NewConflictError("template with this name already exists", err)
		}
		return nil, apperrors.NewDatabaseError("unable to create template", err)
	}
	return template, nil
}

func (lr *letterRepository) FindTemplateByID(ctx context.Context, id uint) (*models.LetterTemplate, error) {
	var template models.LetterTemplate
	if err := lr.db.WithContext(ctx).First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("template not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch template", err)
	}
	return &template, nil
}

func (lr *letterRepository) GetAllTemplates(ctx context.Context) ([]*models.LetterTemplate, error) {
	var templates []*models.LetterTemplate
	if err := lr.db.WithContext(ctx).Order("name ASC").Find(&templates).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch templates", err)
	}
	return templates, nil
}

func (lr *letterRepository) UpdateTemplate(ctx context.Context, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperrors.NewInvalidRequestError("no fields to update", nil)
	}

	result := lr.db.WithContext(ctx).
		Model(&models.LetterTemplate{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return apperrors.NewConflictError("template with this name already exists", result.Error)
		}
		return apperrors.NewDatabaseError("unable to update template", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("template not found", nil)
	}

	return nil
}

func (lr *letterRepository) FindMemberContext(ctx context.Context, memberID uint) (*models.Member, error) {
	var member models.Member

	err := lr.db.WithContext(ctx).
		Preload("Family").
		Preload("CurrentSector").
		First(&member, memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("member not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch member", err)
	}

	return &member, nil
}

func (lr *letterRepository) CreateLetter(ctx context.Context, letter *models.Letter) (*models.Letter, error) {
	err := lr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		letterNo, err := nextLetterNo(tx)
		if err != nil {
			return err
		}
		letter.LetterNo = letterNo

		if err := tx.Create(letter).Error; err != nil {
			return apperrors.NewDatabaseError("unable to create letter", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return letter, nil
}

func (lr *letterRepository) FindLetterByID(ctx context.Context, id uint) (*models.Letter, error) {
	var letter models.Letter

	err := lr.db.WithContext(ctx).
		Preload("Member").
		First(&letter, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("letter not found", err)
		}
		return nil, apperrors.NewDatabaseError("failed to fetch letter", err)
	}

	return &letter, nil
}

func (lr *letterRepository) ListLetters(ctx context.Context, filter LetterFilter) ([]*models.Letter, int64, error) {
	query := lr.db.WithContext(ctx).Model(&models.Letter{})

	if filter.MemberID != 0 {
		query = query.Where("member_id = ?", filter.MemberID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("failed to count letters", err)
	}

	var letters []*models.Letter
	err := query.
		Preload("Member").
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&letters).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to fetch letters", err)
	}

	return letters, total, nil
}

func (lr *letterRepository) IssueLetter(ctx context.Context, id uint, issuedAt time.Time) error {
	return lr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var letter models.Letter
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&letter, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("letter not found", err)
			}
			return apperrors.NewDatabaseError("failed to lock letter", err)
		}

		if letter.Status == models.LetterStatusIssued {
			return apperrors.NewConflictError("letter is already issued", nil)
		}

		err := tx.Model(&letter).Updates(map[string]interface{}{
			"status":    models.LetterStatusIssued,
			"issued_at": issuedAt,
		}).Error
		if err != nil {
			return apperrors.NewDatabaseError("unable to issue letter", err)
		}

		return nil
	})
}

// nextLetterNo allocates the next LTR-YYYY-NNNNN number for the current
// year. The highest existing number is read under a row lock (FOR UPDATE on
// PostgreSQL, no-op on SQLite) so concurrent generations cannot collide.
func nextLetterNo(tx *gorm.DB) (string, error) {
	year := time.Now().Year()
	yearPrefix := fmt.Sprintf("%s-%d-", models.LetterNoPrefix, year)

	var last string
	err := tx.Model(&models.Letter{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("letter_no").
		Where("letter_no LIKE ?", yearPrefix+"%").
		Order("letter_no DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", apperrors.NewDatabaseError("failed to read letter number sequence", err)
	}

	sequence := 1
	if last != "" {
		tail := strings.TrimPrefix(last, yearPrefix)
		parsed, err := strconv.Atoi(tail)
		if err != nil {
			return "", apperrors.NewInternalServerError("malformed letter number in sequence: "+last, err)
		}
		sequence = parsed + 1
	}

	return fmt.Sprintf("%s%05d", yearPrefix, sequence), nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}
