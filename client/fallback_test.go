package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codista_lms/internal/model"
	"codista_lms/pkg/database"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	local, err := NewLocal(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	return local
}

// unreachableRemote points at a port nothing listens on, so every call
// fails at the transport layer.
func unreachableRemote() *Remote {
	return NewRemote("http://127.0.0.1:1")
}

func TestLocalSeedsBundledCatalog(t *testing.T) {
	local := newTestLocal(t)

	courses, err := local.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, len(database.SeedCourses))

	// newest first: the last seed entry leads the listing
	assert.Equal(t, database.SeedCourses[len(database.SeedCourses)-1].Title, courses[0].Title)
	assert.Equal(t, database.SeedCourses[0].Title, courses[len(courses)-1].Title)
}

func TestLocalSeedRunsOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "local.db")

	first, err := NewLocal(path)
	require.NoError(t, err)
	_, err = first.Courses(context.Background())
	require.NoError(t, err)

	second, err := NewLocal(path)
	require.NoError(t, err)
	courses, err := second.Courses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, len(database.SeedCourses))
}

func TestLocalCreatedCourseLeadsTheListing(t *testing.T) {
	local := newTestLocal(t)
	session, err := local.Signup(context.Background(), SignupParams{
		Name: "Grace", Email: "grace@example.com", Password: "password123", Role: "instructor",
	})
	require.NoError(t, err)
	require.Equal(t, model.Instructor, session.User.Role)

	created, err := local.CreateCourse(context.Background(), CourseParams{
		Title: "Offline Course", Category: "Go",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Grace", created.InstructorName)

	courses, err := local.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, len(database.SeedCourses)+1)
	assert.Equal(t, "Offline Course", courses[0].Title)
}

func TestLocalLoginFabricatesStudentForUnknownEmail(t *testing.T) {
	local := newTestLocal(t)

	session, err := local.Login(context.Background(), LoginParams{
		Email: "drop.in@example.com", Password: "whatever",
	})
	require.NoError(t, err)
	assert.Equal(t, model.Student, session.User.Role)
	assert.NotEmpty(t, session.Token)

	// the fabricated account persists, so the password now matters
	_, err = local.Login(context.Background(), LoginParams{
		Email: "drop.in@example.com", Password: "whatever",
	})
	require.NoError(t, err)

	_, err = local.Login(context.Background(), LoginParams{
		Email: "drop.in@example.com", Password: "wrong",
	})
	assert.Error(t, err)
}

func TestLocalProgressAndQuestionsRoundTrip(t *testing.T) {
	local := newTestLocal(t)
	_, err := local.Login(context.Background(), LoginParams{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	courses, err := local.Courses(context.Background())
	require.NoError(t, err)
	course := courses[0]

	_, err = local.MarkVideoViewed(context.Background(), course.ID)
	require.NoError(t, err)
	_, err = local.SaveQuizScore(context.Background(), QuizResult{CourseID: course.ID, Score: 3, Total: 5})
	require.NoError(t, err)

	entries, err := local.Progress(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].VideoViewed)
	require.NotNil(t, entries[0].QuizScore)
	assert.Equal(t, 3, *entries[0].QuizScore)
	assert.Equal(t, course.Title, entries[0].CourseTitle)

	question, err := local.AskQuestion(context.Background(), course.ID, "Does this work offline?")
	require.NoError(t, err)

	// replies stay instructor only, even in the mirror
	_, err = local.ReplyToQuestion(context.Background(), question.ID, "It does.")
	require.Error(t, err)

	_, err = local.Signup(context.Background(), SignupParams{
		Name: "Grace", Email: "grace@example.com", Password: "password123", Role: "instructor",
	})
	require.NoError(t, err)
	reply, err := local.ReplyToQuestion(context.Background(), question.ID, "It does.")
	require.NoError(t, err)
	assert.Equal(t, model.Instructor, reply.UserRole)

	questions, err := local.Questions(context.Background(), course.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Len(t, questions[0].Replies, 1)
	assert.Equal(t, "It does.", questions[0].Replies[0].Text)
}

func TestLocalReplyRequiresInstructorRole(t *testing.T) {
	local := newTestLocal(t)
	_, err := local.Login(context.Background(), LoginParams{Email: "student@example.com", Password: "pw"})
	require.NoError(t, err)

	courses, err := local.Courses(context.Background())
	require.NoError(t, err)
	question, err := local.AskQuestion(context.Background(), courses[0].ID, "Anyone?")
	require.NoError(t, err)

	_, err = local.ReplyToQuestion(context.Background(), question.ID, "Me.")
	require.Error(t, err)

	questions, err := local.Questions(context.Background(), courses[0].ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].Replies)
}

func TestFallbackUsesMirrorWhenServerUnreachable(t *testing.T) {
	store := NewFallback(unreachableRemote(), newTestLocal(t))

	courses, err := store.Courses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, len(database.SeedCourses))
}

func TestFallbackSurfacesAPIRejections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	store := NewFallback(NewRemote(server.URL), newTestLocal(t))

	// the server answered, so the rejection must reach the caller
	// instead of being swallowed by the mirror
	_, err := store.Login(context.Background(), LoginParams{
		Email: "ada@example.com", Password: "wrong",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestFallbackWritesLandInMirrorWhenOffline(t *testing.T) {
	local := newTestLocal(t)
	store := NewFallback(unreachableRemote(), local)

	_, err := store.Signup(context.Background(), SignupParams{
		Name: "Ada", Email: "ada@example.com", Password: "password123", Role: "student",
	})
	require.NoError(t, err)

	courses, err := store.Courses(context.Background())
	require.NoError(t, err)

	progress, err := store.MarkVideoViewed(context.Background(), courses[0].ID)
	require.NoError(t, err)
	assert.True(t, progress.VideoViewed)

	entries, err := local.Progress(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRemoteSendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(Session{Token: "signed-token"})
		case "/api/courses":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]model.Course{})
		}
	}))
	defer server.Close()

	remote := NewRemote(server.URL)
	_, err := remote.Login(context.Background(), LoginParams{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	_, err = remote.Courses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer signed-token", gotAuth)
}

func TestIsConnectivityError(t *testing.T) {
	assert.False(t, IsConnectivityError(nil))
	assert.False(t, IsConnectivityError(&APIError{Status: 403, Message: "nope"}))
	assert.True(t, IsConnectivityError(errors.New("connection refused")))
}
