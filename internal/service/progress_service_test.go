package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"codista_lms/internal/model"
	"codista_lms/internal/repository"
)

func newProgressService(t *testing.T) (*ProgressService, *gorm.DB) {
	db := newTestDB(t)
	return NewProgressService(repository.NewProgressRepository(db), repository.NewCourseRepository(db)), db
}

func countProgressRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Progress{}).Count(&count).Error)
	return count
}

func TestMarkVideoViewedUpsertsSingleRow(t *testing.T) {
	svc, db := newProgressService(t)
	instructor := createUser(t, db, "Grace", "grace@example.com", model.Instructor)
	student := createUser(t, db, "Ada", "ada@example.com", model.Student)
	course := createCourse(t, db, instructor, "Go Basics", "Go")

	first, err := svc.MarkVideoViewed(student.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, first.VideoViewed)
	assert.Nil(t, first.QuizScore)

	// a second view reuses the same row
	second, err := svc.MarkVideoViewed(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, countProgressRows(t, db))
}

func TestSaveQuizScoreOverwritesLatestAttempt(t *testing.T) {
	svc, db := newProgressService(t)
	instructor := createUser(t, db, "Grace", "grace@example.com", model.Instructor)
	student := createUser(t, db, "Ada", "ada@example.com", model.Student)
	course := createCourse(t, db, instructor, "Go Basics", "Go")

	_, err := svc.SaveQuizScore(student.ID, course.ID, 4, 5)
	require.NoError(t, err)

	// a worse retake still replaces the stored result
	progress, err := svc.SaveQuizScore(student.ID, course.ID, 2, 5)
	require.NoError(t, err)
	require.NotNil(t, progress.QuizScore)
	assert.Equal(t, 2, *progress.QuizScore)
	assert.Equal(t, 5, *progress.TotalQuestions)
	assert.EqualValues(t, 1, countProgressRows(t, db))
}

func TestQuizScoreKeepsVideoFlag(t *testing.T) {
	svc, db := newProgressService(t)
	instructor := createUser(t, db, "Grace", "grace@example.com", model.Instructor)
	student := createUser(t, db, "Ada", "ada@example.com", model.Student)
	course := createCourse(t, db, instructor, "Go Basics", "Go")

	_, err := svc.MarkVideoViewed(student.ID, course.ID)
	require.NoError(t, err)

	progress, err := svc.SaveQuizScore(student.ID, course.ID, 3, 5)
	require.NoError(t, err)
	assert.True(t, progress.VideoViewed)
}

func TestProgressRowsAreScopedPerUserAndCourse(t *testing.T) {
	svc, db := newProgressService(t)
	instructor := createUser(t, db, "Grace", "grace@example.com", model.Instructor)
	ada := createUser(t, db, "Ada", "ada@example.com", model.Student)
	bob := createUser(t, db, "Bob", "bob@example.com", model.Student)
	course := createCourse(t, db, instructor, "Go Basics", "Go")
	other := createCourse(t, db, instructor, "SQL Basics", "SQL")

	_, err := svc.MarkVideoViewed(ada.ID, course.ID)
	require.NoError(t, err)
	_, err = svc.MarkVideoViewed(ada.ID, other.ID)
	require.NoError(t, err)
	_, err = svc.MarkVideoViewed(bob.ID, course.ID)
	require.NoError(t, err)

	assert.EqualValues(t, 3, countProgressRows(t, db))

	entries, err := svc.ListForUser(ada.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestListForUserEnrichesAndDropsOrphans(t *testing.T) {
	svc, db := newProgressService(t)
	instructor := createUser(t, db, "Grace", "grace@example.com", model.Instructor)
	student := createUser(t, db, "Ada", "ada@example.com", model.Student)
	course := createCourse(t, db, instructor, "Go Basics", "Go")

	_, err := svc.MarkVideoViewed(student.ID, course.ID)
	require.NoError(t, err)
	// row pointing at a course that no longer exists
	_, err = svc.MarkVideoViewed(student.ID, "deleted-course-id")
	require.NoError(t, err)

	entries, err := svc.ListForUser(student.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Go Basics", entries[0].CourseTitle)
	assert.Equal(t, "Go", entries[0].CourseCategory)
	assert.True(t, entries[0].VideoViewed)
}
