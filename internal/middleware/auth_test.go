package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codista_lms/internal/config"
	"codista_lms/internal/model"
	"codista_lms/internal/util"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	protected := router.Group("/protected", AuthMiddleware(cfg))
	protected.GET("", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	protected.POST("/instructor",
		RequireRole(model.Instructor, "Access denied. Instructors only."),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

	return router
}

func authConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

func tokenFor(t *testing.T, user *model.User, secret string) string {
	t.Helper()
	token, err := util.GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestMissingTokenIs401(t *testing.T) {
	router := testRouter(authConfig())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"No token, authorization denied"}`, rec.Body.String())
}

func TestMalformedTokenIs400(t *testing.T) {
	router := testRouter(authConfig())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Token is not valid"}`, rec.Body.String())
}

func TestTokenSignedWithWrongSecretIs400(t *testing.T) {
	router := testRouter(authConfig())
	user := &model.User{Name: "Ada", Role: model.Student}
	user.ID = 7

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user, "some-other-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidTokenPasses(t *testing.T) {
	router := testRouter(authConfig())
	user := &model.User{Name: "Ada", Role: model.Student}
	user.ID = 7

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user, "test-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":7}`, rec.Body.String())
}

func TestStudentBlockedFromInstructorRoute(t *testing.T) {
	router := testRouter(authConfig())
	student := &model.User{Name: "Ada", Role: model.Student}
	student.ID = 7

	req := httptest.NewRequest(http.MethodPost, "/protected/instructor", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, student, "test-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Access denied. Instructors only."}`, rec.Body.String())
}

func TestInstructorAllowedOnInstructorRoute(t *testing.T) {
	router := testRouter(authConfig())
	instructor := &model.User{Name: "Grace", Role: model.Instructor}
	instructor.ID = 9

	req := httptest.NewRequest(http.MethodPost, "/protected/instructor", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, instructor, "test-secret"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
