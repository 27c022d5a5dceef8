package members

import (
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/internal/log"
	"gorm.io/gorm"
)

type MemberServiceFactory interface {
	CreateService() MemberService
	CreateController() *router.RESTController
}

type DefaultMemberServiceFactory struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewMemberServiceFactory(db *gorm.DB, logger *log.Logger) MemberServiceFactory {
	return &DefaultMemberServiceFactory{
		db:     db,
		logger: logger,
	}
}

func (f *DefaultMemberServiceFactory) CreateService() MemberService {
	repository := NewMemberRepository(f.db)
	return NewMemberService(f.logger, repository)
}

func (f *DefaultMemberServiceFactory) CreateController() *router.RESTController {
	return NewMemberController(f.db, f.logger)
}
