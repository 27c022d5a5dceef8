package members

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

func TestMemberService_CreateMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMemberRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewMemberService(logger, mockRepo)

	baseRequest := func() *CreateMemberRequest {
		return &CreateMemberRequest{
			FamilyID:        1,
			CurrentSectorID: 2,
			FullName:        "Andi Simanjuntak",
			Gender:          models.GenderMale,
			FamilyRole:      models.FamilyRoleHusband,
			DateOfBirth:     "1980-03-12",
			PhoneNumber:     "+628123456789",
		}
	}

	t.Run("normalizes phone and defaults membership status", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateMember(gomock.Any(), gomock.Any(), "petugas").
			DoAndReturn(func(_ context.Context, member *models.Member, _ string) (*models.Member, error) {
				assert.Equal(t, "08123456789", member.PhoneNumber)
				assert.Equal(t, models.MembershipStatusFull, member.MembershipStatus)
				assert.True(t, member.IsActive)
				member.MemberID = "NIJ-2025-00001"
				return member, nil
			})

		result, err := service.CreateMember(context.Background(), baseRequest(), "petugas")

		assert.NoError(t, err)
		assert.Equal(t, "NIJ-2025-00001", result.MemberID)
	})

	t.Run("rejects invalid phone number", func(t *testing.T) {
		req := baseRequest()
		req.PhoneNumber = "12345"

		result, err := service.CreateMember(context.Background(), req, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("child without birth order rejected", func(t *testing.T) {
		req := baseRequest()
		req.FamilyRole = models.FamilyRoleChild
		req.BirthOrder = nil

		result, err := service.CreateMember(context.Background(), req, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("birth order on non-child rejected", func(t *testing.T) {
		req := baseRequest()
		order := 1
		req.BirthOrder = &order

		result, err := service.CreateMember(context.Background(), req, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("duplicate birth order is a conflict", func(t *testing.T) {
		req := baseRequest()
		req.FamilyRole = models.FamilyRoleChild
		order := 2
		req.BirthOrder = &order

		mockRepo.EXPECT().
			BirthOrderTaken(gomock.Any(), uint(1), 2, uint(0)).
			Return(true, nil)

		result, err := service.CreateMember(context.Background(), req, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	})

	t.Run("baptism before birth rejected", func(t *testing.T) {
		req := baseRequest()
		req.BaptismDate = "1979-01-01"

		result, err := service.CreateMember(context.Background(), req, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("sidi before baptism rejected", func(t *testing.T) {
		req := baseRequest()
		req.BaptismDate = "1980-06-01"
		req.SidiDate = "1980-05-01"

		result, err := service.CreateMember(context.Background(), req, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestMemberService_UpdateMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMemberRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewMemberService(logger, mockRepo)

	existing := func() *models.Member {
		m := &models.Member{
			FamilyID:         1,
			CurrentSectorID:  2,
			FullName:         "Andi Simanjuntak",
			Gender:           models.GenderMale,
			FamilyRole:       models.FamilyRoleHusband,
			DateOfBirth:      time.Date(1980, 3, 12, 0, 0, 0, 0, time.UTC),
			MembershipStatus: models.MembershipStatusFull,
			IsActive:         true,
		}
		m.ID = 10
		return m
	}

	t.Run("deceased requires date on or after birth", func(t *testing.T) {
		mockRepo.EXPECT().FindMemberByID(gomock.Any(), uint(10)).Return(existing(), nil)

		deceased := true
		err := service.UpdateMember(context.Background(), 10, &UpdateMemberRequest{
			IsDeceased:   &deceased,
			DeceasedDate: "1979-01-01",
		})

		assert.Error(t, err)
	})

	t.Run("marking deceased stamps date and reason", func(t *testing.T) {
		mockRepo.EXPECT().FindMemberByID(gomock.Any(), uint(10)).Return(existing(), nil)
		mockRepo.EXPECT().
			UpdateMember(gomock.Any(), uint(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, updates map[string]interface{}) error {
				assert.Equal(t, true, updates["is_deceased"])
				assert.NotNil(t, updates["deceased_date"])
				assert.Equal(t, "Illness", updates["deceased_reason"])
				return nil
			})

		deceased := true
		err := service.UpdateMember(context.Background(), 10, &UpdateMemberRequest{
			IsDeceased:     &deceased,
			DeceasedDate:   "2025-01-15",
			DeceasedReason: "Illness",
		})

		assert.NoError(t, err)
	})

	t.Run("role change away from child clears birth order", func(t *testing.T) {
		child := existing()
		child.FamilyRole = models.FamilyRoleChild
		order := 3
		child.BirthOrder = &order

		mockRepo.EXPECT().FindMemberByID(gomock.Any(), uint(10)).Return(child, nil)
		mockRepo.EXPECT().
			UpdateMember(gomock.Any(), uint(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, updates map[string]interface{}) error {
				assert.Equal(t, models.FamilyRoleOther, updates["family_role"])
				assert.Contains(t, updates, "birth_order")
				assert.Nil(t, updates["birth_order"])
				return nil
			})

		err := service.UpdateMember(context.Background(), 10, &UpdateMemberRequest{
			FamilyRole: models.FamilyRoleOther,
		})

		assert.NoError(t, err)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		mockRepo.EXPECT().FindMemberByID(gomock.Any(), uint(10)).Return(existing(), nil)

		err := service.UpdateMember(context.Background(), 10, &UpdateMemberRequest{})

		assert.Error(t, err)
	})
}

func TestMemberService_DeactivateMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMemberRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewMemberService(logger, mockRepo)

	t.Run("default reason applied", func(t *testing.T) {
		active := &models.Member{IsActive: true}
		active.ID = 4

		mockRepo.EXPECT().FindMemberByID(gomock.Any(), uint(4)).Return(active, nil)
		mockRepo.EXPECT().
			UpdateMember(gomock.Any(), uint(4), map[string]interface{}{
				"is_active":       false,
				"inactive_reason": defaultDeactivationReason,
			}).
			Return(nil)

		err := service.DeactivateMember(context.Background(), 4, nil)

		assert.NoError(t, err)
	})

	t.Run("already inactive is a conflict", func(t *testing.T) {
		inactive := &models.Member{IsActive: false}
		inactive.ID = 5

		mockRepo.EXPECT().FindMemberByID(gomock.Any(), uint(5)).Return(inactive, nil)

		err := service.DeactivateMember(context.Background(), 5, nil)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	})
}

func TestMemberService_TransferMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMemberRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewMemberService(logger, mockRepo)

	fixedNow := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixedNow }
	defer func() { timeNow = time.Now }()

	t.Run("passes command to repository", func(t *testing.T) {
		mockRepo.EXPECT().
			TransferSector(gomock.Any(), TransferCommand{
				MemberID:     6,
				ToSectorID:   3,
				Reason:       "Moved house",
				Notes:        "new address on file",
				RecordedBy:   "petugas",
				TransferDate: fixedNow,
			}).
			Return(nil)

		err := service.TransferMember(context.Background(), 6, &TransferMemberRequest{
			ToSectorID: 3,
			Reason:     "Moved house",
			Notes:      "new address on file",
		}, "petugas")

		assert.NoError(t, err)
	})

	t.Run("same-sector transfer error propagates", func(t *testing.T) {
		mockRepo.EXPECT().
			TransferSector(gomock.Any(), gomock.Any()).
			Return(NewSameSectorTransferError())

		err := service.TransferMember(context.Background(), 6, &TransferMemberRequest{ToSectorID: 2}, "system")

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	})

	t.Run("missing target sector rejected", func(t *testing.T) {
		err := service.TransferMember(context.Background(), 6, &TransferMemberRequest{}, "system")

		assert.Error(t, err)
	})
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"local form unchanged", "081234567890", "081234567890", true},
		{"country code rewritten", "6281234567890", "081234567890", true},
		{"plus prefix rewritten", "+6281234567890", "081234567890", true},
		{"empty passes through", "", "", true},
		{"landline rejected", "0211234567", "", false},
		{"too short rejected", "0812345", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhoneNumber(tc.input)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.want, got)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
