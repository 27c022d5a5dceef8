package sectors

import (
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	"gorm.io/gorm"
)

type SectorServiceFactory interface {
	CreateService() SectorService
	CreateController() *router.RESTController
}

type DefaultSectorServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewSectorServiceFactory(db *gorm.DB, logger *log.Logger) SectorServiceFactory {
	return &DefaultSectorServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultSectorServiceFactory) CreateService() SectorService {
	repository := NewSectorRepository(f.db)
	return NewSectorService(f.logger, repository)
}

func (f *DefaultSectorServiceFactory) CreateController() *router.RESTController {
	return NewSectorController(f.db, f.logger)
}
