package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/akeren/church-admin-api/config"
	"github.com/akeren/church-admin-api/config/router"
	"github.com/akeren/church-admin-api/domain"
	"github.com/akeren/church-admin-api/internal/log"
	"github.com/akeren/church-admin-api/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer boots the full HTTP stack against a private in-memory
// SQLite database. Each suite passes its own name so databases are not
// shared across suites running in one process.
func newTestServer(s *suite.Suite, name string) (*gorm.DB, *httptest.Server) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=10000", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	// SQLite serializes writes at the database level. Limiting to one open
	// connection prevents "database is locked" errors under concurrent load.
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(models.ModelRegistry...)
	s.Require().NoError(err)

	logger := log.NewLoggerWithJSONOutput()

	appConfig := &config.ApplicationConfig{
		DB:     db,
		Logger: logger,
	}

	appConfig.RouterService = router.CreateRouterService(logger, nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	domain.SetupCoreDomain(appConfig)

	return db, httptest.NewServer(appConfig.RouterService.GetEngine())
}

func postJSON(s *suite.Suite, url string, payload any) map[string]any {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func getJSON(s *suite.Suite, url string) map[string]any {
	resp, err := http.Get(url)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func putJSON(s *suite.Suite, url string, payload any) map[string]any {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}

func deleteJSON(s *suite.Suite, url string) map[string]any {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	s.Require().NoError(err)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var response map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}
