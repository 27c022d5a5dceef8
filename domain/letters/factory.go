package letters

import (
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	"gorm.io/gorm"
)

type LetterServiceFactory interface {
	CreateService() LetterService
	CreateController() *router.RESTController
}

type DefaultLetterServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewLetterServiceFactory(db *gorm.DB, logger *log.Logger) LetterServiceFactory {
	return &DefaultLetterServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultLetterServiceFactory) CreateService() LetterService {
	repository := NewLetterRepository(f.db)
	return NewLetterService(f.logger, repository)
}

func (f *DefaultLetterServiceFactory) CreateController() *router.RESTController {
	return NewLetterController(f.db, f.logger)
}
