package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codista_lms/internal/model"
	"codista_lms/internal/repository"
	"codista_lms/internal/util"
)

func newAuthService(t *testing.T) *AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testConfig())
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "password123",
		Role:     model.Instructor,
	}
	token, err := svc.Signup(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Instructor, claims.Role)

	// the stored password must be a hash, never the plaintext
	assert.NotEqual(t, "password123", user.Password)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	first := &model.User{Name: "Ada", Email: "ada@example.com", Password: "password123", Role: model.Student}
	_, err := svc.Signup(first)
	require.NoError(t, err)

	dup := &model.User{Name: "Other Ada", Email: "ada@example.com", Password: "different", Role: model.Student}
	_, err = svc.Signup(dup)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	signup := &model.User{Name: "Ada", Email: "ada@example.com", Password: "password123", Role: model.Student}
	_, err := svc.Signup(signup)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login("ada@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Ada", user.Name)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("ada@example.com", "wrong")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login("nobody@example.com", "password123")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}

func TestCurrentUser(t *testing.T) {
	svc := newAuthService(t)

	signup := &model.User{Name: "Ada", Email: "ada@example.com", Password: "password123", Role: model.Student}
	_, err := svc.Signup(signup)
	require.NoError(t, err)

	user, err := svc.CurrentUser(&util.Claims{UserID: signup.ID})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.CurrentUser(&util.Claims{UserID: 9999})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
