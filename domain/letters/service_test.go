package letters

import (
	"context"
	"testing"
	"time"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLetterService_GenerateLetter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLetterRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewLetterService(logger, mockRepo)

	fixedNow := time.Date(2025, 8, 3, 9, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixedNow }
	defer func() { timeNow = time.Now }()

	member := &models.Member{
		MemberID:         "NIJ-2025-00007",
		FullName:         "Togar Siregar",
		Gender:           models.GenderMale,
		DateOfBirth:      time.Date(1980, 1, 20, 0, 0, 0, 0, time.UTC),
		PlaceOfBirth:     "Jakarta",
		MembershipStatus: models.MembershipStatusFull,
		Family:           models.Family{FamilyName: "Siregar"},
		CurrentSector:    models.Sector{Name: "Sektor 3"},
	}
	member.ID = 7

	t.Run("renders subject and body into a draft", func(t *testing.T) {
		template := &models.LetterTemplate{
			Name:    "membership-certificate",
			Subject: "Certificate for {{.FullName}}",
			Body:    "This certifies that {{.FullName}} ({{.MemberID}}) of sector {{.SectorName}} is a member in good standing as of {{.Today}}.",
		}
		template.ID = 3

		mockRepo.EXPECT().FindTemplateByID(gomock.Any(), uint(3)).Return(template, nil)
		mockRepo.EXPECT().FindMemberContext(gomock.Any(), uint(7)).Return(member, nil)
		mockRepo.EXPECT().
			CreateLetter(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, letter *models.Letter) (*models.Letter, error) {
				assert.Equal(t, "Certificate for Togar Siregar", letter.Subject)
				assert.Contains(t, letter.Body, "Togar Siregar (NIJ-2025-00007)")
				assert.Contains(t, letter.Body, "2025-08-03")
				assert.Equal(t, models.LetterStatusDraft, letter.Status)
				letter.LetterNo = "LTR-2025-00001"
				return letter, nil
			})

		result, err := service.GenerateLetter(context.Background(), &GenerateLetterRequest{TemplateID: 3, MemberID: 7})

		assert.NoError(t, err)
		assert.Equal(t, "LTR-2025-00001", result.LetterNo)
		assert.Equal(t, models.LetterStatusDraft, result.Status)
		assert.Equal(t, "Togar Siregar", result.MemberName)
	})

	t.Run("unknown placeholder rejects generation", func(t *testing.T) {
		template := &models.LetterTemplate{
			Subject: "For {{.FullName}}",
			Body:    "Hello {{.Nickname}}",
		}
		template.ID = 4

		mockRepo.EXPECT().FindTemplateByID(gomock.Any(), uint(4)).Return(template, nil)
		mockRepo.EXPECT().FindMemberContext(gomock.Any(), uint(7)).Return(member, nil)

		result, err := service.GenerateLetter(context.Background(), &GenerateLetterRequest{TemplateID: 4, MemberID: 7})

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("unknown member rejected", func(t *testing.T) {
		template := &models.LetterTemplate{Subject: "s", Body: "b"}
		template.ID = 3

		mockRepo.EXPECT().FindTemplateByID(gomock.Any(), uint(3)).Return(template, nil)
		mockRepo.EXPECT().
			FindMemberContext(gomock.Any(), uint(99)).
			Return(nil, apperrors.NewNotFoundError("member not found", nil))

		result, err := service.GenerateLetter(context.Background(), &GenerateLetterRequest{TemplateID: 3, MemberID: 99})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestLetterService_CreateTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLetterRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewLetterService(logger, mockRepo)

	t.Run("stores a renderable template", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateTemplate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, template *models.LetterTemplate) (*models.LetterTemplate, error) {
				assert.Equal(t, "baptism-certificate", template.Name)
				return template, nil
			})

		result, err := service.CreateTemplate(context.Background(), &CreateTemplateRequest{
			Name:    "baptism-certificate",
			Subject: "Baptism of {{.FullName}}",
			Body:    "Baptized on {{.BaptismDate}}.",
		})

		assert.NoError(t, err)
		assert.Equal(t, "baptism-certificate", result.Name)
	})

	t.Run("template with unknown placeholder rejected upfront", func(t *testing.T) {
		result, err := service.CreateTemplate(context.Background(), &CreateTemplateRequest{
			Name:    "broken",
			Subject: "For {{.FullName}}",
			Body:    "Hello {{.Surname}}",
		})

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("template that does not parse rejected upfront", func(t *testing.T) {
		result, err := service.CreateTemplate(context.Background(), &CreateTemplateRequest{
			Name:    "broken",
			Subject: "For {{.FullName",
			Body:    "ok",
		})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestLetterService_IssueLetter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLetterRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewLetterService(logger, mockRepo)

	fixedNow := time.Date(2025, 8, 3, 9, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixedNow }
	defer func() { timeNow = time.Now }()

	t.Run("passes the issue timestamp through", func(t *testing.T) {
		mockRepo.EXPECT().IssueLetter(gomock.Any(), uint(12), fixedNow).Return(nil)

		err := service.IssueLetter(context.Background(), 12)

		assert.NoError(t, err)
	})

	t.Run("double issue surfaces conflict", func(t *testing.T) {
		mockRepo.EXPECT().
			IssueLetter(gomock.Any(), uint(12), fixedNow).
			Return(apperrors.NewConflictError("letter is already issued", nil))

		err := service.IssueLetter(context.Background(), 12)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	})
}

func TestLetterService_ListLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLetterRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewLetterService(logger, mockRepo)

	t.Run("applies default pagination", func(t *testing.T) {
		mockRepo.EXPECT().
			ListLetters(gomock.Any(), LetterFilter{Limit: defaultPageSize}).
			Return([]*models.Letter{}, int64(0), nil)

		result, err := service.ListLetters(context.Background(), &ListLettersQuery{})

		assert.NoError(t, err)
		assert.Equal(t, defaultPageSize, result.Limit)
	})

	t.Run("caps oversized limits", func(t *testing.T) {
		mockRepo.EXPECT().
			ListLetters(gomock.Any(), LetterFilter{Limit: maxPageSize, Offset: 40}).
			Return([]*models.Letter{}, int64(0), nil)

		result, err := service.ListLetters(context.Background(), &ListLettersQuery{Limit: 500, Offset: 40})

		assert.NoError(t, err)
		assert.Equal(t, maxPageSize, result.Limit)
	})
}
