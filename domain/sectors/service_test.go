package sectors

import (
	"context"
	"testing"

	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	apperrors "github.com/akeren/church-admin-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSectorService_CreateSector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockSectorRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewSectorService(logger, mockRepo)

	t.Run("successful creation", func(t *testing.T) {
		req := &CreateSectorRequest{Name: "Sektor Barat", Description: "West side"}

		mockRepo.EXPECT().
			CreateSector(gomock.Any(), gomock.Any()).
			Return(&models.Sector{Name: "Sektor Barat", Description: "West side"}, nil)

		result, err := service.CreateSector(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "Sektor Barat", result.Name)
		assert.Zero(t, result.MemberCount)
	})

	t.Run("blank name rejected before hitting the repository", func(t *testing.T) {
		req := &CreateSectorRequest{Name: "   "}

		result, err := service.CreateSector(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("duplicate name surfaces conflict", func(t *testing.T) {
		req := &CreateSectorRequest{Name: "Sektor Barat"}

		mockRepo.EXPECT().
			CreateSector(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflictError("sector with this name already exists", nil))

		result, err := service.CreateSector(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	})
}

func TestSectorService_FindSectorByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockSectorRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewSectorService(logger, mockRepo)

	t.Run("detail includes families, member preview and counts", func(t *testing.T) {
		sector := &models.Sector{
			Name: "Sektor Timur",
			Families: []models.Family{
				{FamilyName: "Simanjuntak", FamilyStatus: models.FamilyStatusActive},
			},
			Members: []models.Member{
				{MemberID: "NIJ-2025-00001", FullName: "Andi Simanjuntak"},
			},
		}
		sector.ID = 3

		mockRepo.EXPECT().
			FindSectorDetail(gomock.Any(), uint(3), memberPreviewLimit).
			Return(sector, nil)
		mockRepo.EXPECT().
			CountsForSector(gomock.Any(), uint(3)).
			Return(SectorCounts{FamilyCount: 1, MemberCount: 4}, nil)

		result, err := service.FindSectorByID(context.Background(), 3)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result.Families, 1)
		assert.Len(t, result.Members, 1)
		assert.Equal(t, int64(4), result.MemberCount)
	})

	t.Run("zero ID rejected", func(t *testing.T) {
		result, err := service.FindSectorByID(context.Background(), 0)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("not found propagates", func(t *testing.T) {
		mockRepo.EXPECT().
			FindSectorDetail(gomock.Any(), uint(99), memberPreviewLimit).
			Return(nil, apperrors.NewNotFoundError("sector not found", nil))

		result, err := service.FindSectorByID(context.Background(), 99)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetErrorType(err))
	})
}

func TestSectorService_UpdateSector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockSectorRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewSectorService(logger, mockRepo)

	t.Run("updates provided fields only", func(t *testing.T) {
		mockRepo.EXPECT().
			UpdateSector(gomock.Any(), uint(2), map[string]interface{}{"name": "Sektor Utara"}).
			Return(nil)

		err := service.UpdateSector(context.Background(), 2, &UpdateSectorRequest{Name: "Sektor Utara"})

		assert.NoError(t, err)
	})

	t.Run("empty update rejected", func(t *testing.T) {
		err := service.UpdateSector(context.Background(), 2, &UpdateSectorRequest{})

		assert.Error(t, err)
	})
}
