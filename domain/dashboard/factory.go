package dashboard

import (
	"github.com/akeren/church-admin-api/config"
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	"gorm.io/gorm"
)

type DashboardServiceFactory interface {
	CreateService() DashboardService
	CreateController() *router.RESTController
}

type DefaultDashboardServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
	cache  config.Cache
}

func NewDashboardServiceFactory(db *gorm.DB, logger *log.Logger, cache config.Cache) DashboardServiceFactory {
	return &DefaultDashboardServiceFactory{
		db:     db,
		logger: logger,
		cache:  cache,
	}
}

func (f *DefaultDashboardServiceFactory) CreateService() DashboardService {
	repository := NewDashboardRepository(f.db)
	return NewDashboardService(f.logger, repository, f.cache)
}

func (f *DefaultDashboardServiceFactory) CreateController() *router.RESTController {
	return NewDashboardController(f.db, f.logger, f.cache)
}
