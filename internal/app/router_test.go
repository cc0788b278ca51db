package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codista_lms/internal/config"
	"codista_lms/internal/model"
	"codista_lms/internal/util"
	"codista_lms/pkg/database"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
	}

	app := &App{Config: cfg, DB: db}
	repos := initRepositories(db)
	services, err := initServices(repos, cfg, nil)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	app.registerRoutes(router, initControllers(services, db), cfg)
	return router, db, cfg
}

func bearerFor(t *testing.T, db *gorm.DB, name, email string, role model.UserRole) string {
	t.Helper()
	user := &model.User{Name: name, Email: email, Password: "irrelevant", Role: role}
	require.NoError(t, db.Create(user).Error)
	token, err := util.GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestCatalogIsReadableWithoutToken(t *testing.T) {
	router, db, _ := newTestApp(t)
	require.NoError(t, database.Seed(db))

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var courses []model.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	assert.Len(t, courses, len(database.SeedCourses))
}

func TestCourseCreateStaysBehindAuth(t *testing.T) {
	router, db, _ := newTestApp(t)

	body := []byte(`{"title":"New Course","category":"Go"}`)

	t.Run("anonymous is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"No token, authorization denied"}`, rec.Body.String())
	})

	t.Run("student is 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, db, "Ada", "ada@example.com", model.Student))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Access denied. Instructors only."}`, rec.Body.String())
	})

	t.Run("instructor is 200 with stamped name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerFor(t, db, "Grace", "grace@example.com", model.Instructor))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var course model.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &course))
		assert.Equal(t, "Grace", course.InstructorName)
	})
}

func TestQuestionThreadIsReadableWithoutToken(t *testing.T) {
	router, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/questions/some-course", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
