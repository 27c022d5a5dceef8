package members

import (
	"context"
	"testing"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Riko Simanjuntak", normalizeName(" riko  SIMANJUNTAK "))
	assert.Equal(t, "Maria", normalizeName("MARIA"))
	assert.Equal(t, "", normalizeName("   "))
}

func TestStageImportRow(t *testing.T) {
	valid := func() *ImportRow {
		return &ImportRow{
			SectorName:  "Sektor Barat",
			FamilyName:  "simanjuntak",
			FullName:    "riko simanjuntak",
			Gender:      models.GenderMale,
			FamilyRole:  models.FamilyRoleHusband,
			DateOfBirth: "1985-08-20",
			PhoneNumber: "6281234567890",
		}
	}

	t.Run("normalizes names and phone", func(t *testing.T) {
		staged, err := stageImportRow(1, valid())

		assert.NoError(t, err)
		assert.Equal(t, "Riko Simanjuntak", staged.Member.FullName)
		assert.Equal(t, "Simanjuntak", staged.FamilyName)
		assert.Equal(t, "081234567890", staged.Member.PhoneNumber)
		assert.Equal(t, models.MembershipStatusFull, staged.Member.MembershipStatus)
		assert.True(t, staged.Member.IsActive)
	})

	t.Run("child requires birth order", func(t *testing.T) {
		row := valid()
		row.FamilyRole = models.FamilyRoleChild

		_, err := stageImportRow(1, row)

		assert.Error(t, err)
	})

	t.Run("sidi without baptism rejected", func(t *testing.T) {
		row := valid()
		row.SidiDate = "2000-01-01"

		_, err := stageImportRow(1, row)

		assert.Error(t, err)
	})
}

func TestMemberService_ImportMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockMemberRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewMemberService(logger, mockRepo)

	validRow := ImportRow{
		SectorName:  "Sektor Barat",
		FamilyName:  "Simanjuntak",
		FullName:    "Riko Simanjuntak",
		Gender:      models.GenderMale,
		FamilyRole:  models.FamilyRoleHusband,
		DateOfBirth: "1985-08-20",
	}

	t.Run("valid batch commits and reports created numbers", func(t *testing.T) {
		mockRepo.EXPECT().
			ImportMembers(gomock.Any(), gomock.Any(), "petugas").
			Return([]string{"NIJ-2025-00001"}, nil, nil)

		report, err := service.ImportMembers(context.Background(), &ImportMembersRequest{
			Rows: []ImportRow{validRow},
		}, "petugas")

		assert.NoError(t, err)
		assert.Equal(t, 1, report.TotalRows)
		assert.Equal(t, []string{"NIJ-2025-00001"}, report.Created)
		assert.Empty(t, report.Errors)
	})

	t.Run("invalid row fails batch before the repository is called", func(t *testing.T) {
		bad := validRow
		bad.PhoneNumber = "not-a-phone"

		report, err := service.ImportMembers(context.Background(), &ImportMembersRequest{
			Rows: []ImportRow{validRow, bad},
		}, "system")

		assert.NoError(t, err)
		assert.Len(t, report.Errors, 1)
		assert.Equal(t, 2, report.Errors[0].Row)
		assert.Empty(t, report.Created)
	})

	t.Run("repository row errors roll the batch back", func(t *testing.T) {
		mockRepo.EXPECT().
			ImportMembers(gomock.Any(), gomock.Any(), "system").
			Return(nil, []ImportRowError{{Row: 1, Message: "member already exists"}}, nil)

		report, err := service.ImportMembers(context.Background(), &ImportMembersRequest{
			Rows: []ImportRow{validRow},
		}, "system")

		assert.NoError(t, err)
		assert.Len(t, report.Errors, 1)
		assert.Empty(t, report.Created)
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		report, err := service.ImportMembers(context.Background(), &ImportMembersRequest{}, "system")

		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
