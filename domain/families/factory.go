package families

import (
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	"gorm.io/gorm"
)

type FamilyServiceFactory interface {
	CreateService() FamilyService
	CreateController() *router.RESTController
}

type DefaultFamilyServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewFamilyServiceFactory(db *gorm.DB, logger *log.Logger) FamilyServiceFactory {
	return &DefaultFamilyServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultFamilyServiceFactory) CreateService() FamilyService {
	repository := NewFamilyRepository(f.db)
	return NewFamilyService(f.logger, repository)
}

func (f *DefaultFamilyServiceFactory) CreateController() *router.RESTController {
	return NewFamilyController(f.db, f.logger)
}
