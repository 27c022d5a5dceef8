package attendance

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

func TestAttendanceService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAttendanceRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAttendanceService(logger, mockRepo)

	fixedNow := time.Date(2025, 8, 3, 8, 30, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixedNow }
	defer func() { timeNow = time.Now }()

	event := &models.Event{Name: "Sunday Service", EventType: models.EventTypeService}
	event.ID = 1

	t.Run("defaults status to present and stamps check-in time", func(t *testing.T) {
		mockRepo.EXPECT().FindEventByID(gomock.Any(), uint(1)).Return(event, nil)
		mockRepo.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.AttendanceRecord) (*models.AttendanceRecord, error) {
				assert.Equal(t, models.AttendanceStatusPresent, record.Status)
				assert.Equal(t, fixedNow, record.CheckedInAt)
				assert.Equal(t, "petugas", record.RecordedBy)
				return record, nil
			})

		result, err := service.CheckIn(context.Background(), 1, &CheckInRequest{MemberID: 9}, "petugas")

		assert.NoError(t, err)
		assert.Equal(t, models.AttendanceStatusPresent, result.Status)
	})

	t.Run("duplicate check-in surfaces conflict", func(t *testing.T) {
		mockRepo.EXPECT().FindEventByID(gomock.Any(), uint(1)).Return(event, nil)
		mockRepo.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewConflictError("member is already recorded for this event", nil))

		result, err := service.CheckIn(context.Background(), 1, &CheckInRequest{MemberID: 9}, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrorTypeConflict, apperrors.GetErrorType(err))
	})

	t.Run("unknown event rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			FindEventByID(gomock.Any(), uint(77)).
			Return(nil, apperrors.NewNotFoundError("event not found", nil))

		result, err := service.CheckIn(context.Background(), 77, &CheckInRequest{MemberID: 9}, "system")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestAttendanceService_RecordBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAttendanceRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAttendanceService(logger, mockRepo)

	event := &models.Event{Name: "Bible Study", EventType: models.EventTypeBibleStudy}
	event.ID = 2

	t.Run("records whole batch with shared timestamp", func(t *testing.T) {
		mockRepo.EXPECT().FindEventByID(gomock.Any(), uint(2)).Return(event, nil)
		mockRepo.EXPECT().
			CreateRecords(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []models.AttendanceRecord) error {
				assert.Len(t, records, 2)
				assert.Equal(t, records[0].CheckedInAt, records[1].CheckedInAt)
				assert.Equal(t, models.AttendanceStatusExcused, records[1].Status)
				return nil
			})

		err := service.RecordBatch(context.Background(), 2, &BulkRecordRequest{
			Records: []CheckInRequest{
				{MemberID: 1},
				{MemberID: 2, Status: models.AttendanceStatusExcused},
			},
		}, "system")

		assert.NoError(t, err)
	})

	t.Run("duplicate member within batch rejected", func(t *testing.T) {
		mockRepo.EXPECT().FindEventByID(gomock.Any(), uint(2)).Return(event, nil)

		err := service.RecordBatch(context.Background(), 2, &BulkRecordRequest{
			Records: []CheckInRequest{{MemberID: 1}, {MemberID: 1}},
		}, "system")

		assert.Error(t, err)
	})
}

func TestAttendanceService_MemberHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAttendanceRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAttendanceService(logger, mockRepo)

	t.Run("computes attendance rate", func(t *testing.T) {
		records := []*models.AttendanceRecord{
			{MemberID: 5, Status: models.AttendanceStatusPresent, Event: models.Event{Name: "A", EventDate: time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)}},
			{MemberID: 5, Status: models.AttendanceStatusAbsent, Event: models.Event{Name: "B", EventDate: time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC)}},
		}

		mockRepo.EXPECT().
			MemberRecords(gomock.Any(), uint(5), memberHistoryLimit).
			Return(records, nil)

		result, err := service.MemberHistory(context.Background(), 5)

		assert.NoError(t, err)
		assert.Len(t, result.Records, 2)
		assert.InDelta(t, 0.5, result.AttendanceRate, 0.0001)
	})

	t.Run("no records means zero rate", func(t *testing.T) {
		mockRepo.EXPECT().
			MemberRecords(gomock.Any(), uint(6), memberHistoryLimit).
			Return([]*models.AttendanceRecord{}, nil)

		result, err := service.MemberHistory(context.Background(), 6)

		assert.NoError(t, err)
		assert.Zero(t, result.AttendanceRate)
	})
}

func TestAttendanceService_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockAttendanceRepository(ctrl)
	logger := log.NewLoggerWithJSONOutput()
	service := NewAttendanceService(logger, mockRepo)

	t.Run("parses date bounds", func(t *testing.T) {
		mockRepo.EXPECT().
			ListEvents(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter EventFilter) ([]*models.Event, int64, error) {
				assert.NotNil(t, filter.From)
				assert.NotNil(t, filter.To)
				assert.Equal(t, 2025, filter.From.Year())
				return []*models.Event{}, 0, nil
			})

		_, err := service.ListEvents(context.Background(), &ListEventsQuery{From: "2025-01-01", To: "2025-12-31"})

		assert.NoError(t, err)
	})
}
