package attendance

import (
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	"gorm.io/gorm"
)

type AttendanceServiceFactory interface {
	CreateService() AttendanceService
	CreateController() *router.RESTController
}

type DefaultAttendanceServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewAttendanceServiceFactory(db *gorm.DB, logger *log.Logger) AttendanceServiceFactory {
	return &DefaultAttendanceServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultAttendanceServiceFactory) CreateService() AttendanceService {
	repository := NewAttendanceRepository(f.db)
	return NewAttendanceService(f.logger, repository)
}

func (f *DefaultAttendanceServiceFactory) CreateController() *router.RESTController {
	return NewAttendanceController(f.db, f.logger)
}
