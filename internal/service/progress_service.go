package service

import (
	"codista_lms/internal/model"
	"codista_lms/internal/repository"
	"time"

	"gorm.io/gorm"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	CourseRepo   *repository.CourseRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, courseRepo *repository.CourseRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		CourseRepo:   courseRepo,
	}
}

// ListForUser returns the caller's progress rows enriched with course
// title and category. Rows whose course no longer exists are dropped
// rather than surfaced as errors.
func (s *ProgressService) ListForUser(userID uint) ([]model.ProgressEntry, error) {
	rows, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CourseID)
	}
	courses, err := s.CourseRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ProgressEntry, 0, len(rows))
	for _, row := range rows {
		course, ok := courses[row.CourseID]
		if !ok {
			continue
		}
		entries = append(entries, model.ProgressEntry{
			ID:             row.ID,
			CourseID:       row.CourseID,
			CourseTitle:    course.Title,
			CourseCategory: course.Category,
			VideoViewed:    row.VideoViewed,
			QuizScore:      row.QuizScore,
			TotalQuestions: row.TotalQuestions,
			LastAccessed:   row.LastAccessed,
		})
	}

	return entries, nil
}

// MarkVideoViewed upserts the row for the pair and flips VideoViewed.
// Calling it again is a no-op apart from the refreshed timestamp.
func (s *ProgressService) MarkVideoViewed(userID uint, courseID string) (*model.Progress, error) {
	progress, err := s.ProgressRepo.FindByUserAndCourse(userID, courseID)
	switch err {
	case nil:
		progress.VideoViewed = true
		progress.LastAccessed = time.Now()
		if err := s.ProgressRepo.Save(progress); err != nil {
			return nil, err
		}
		return progress, nil
	case gorm.ErrRecordNotFound:
		progress = &model.Progress{
			UserID:       userID,
			CourseID:     courseID,
			VideoViewed:  true,
			LastAccessed: time.Now(),
		}
		if err := s.ProgressRepo.Create(progress); err != nil {
			return nil, err
		}
		return progress, nil
	default:
		return nil, err
	}
}

// SaveQuizScore upserts the row and overwrites the score with the
// latest attempt. Earlier attempts are not kept and there is no
// keep-best rule; a retake always replaces the stored result.
func (s *ProgressService) SaveQuizScore(userID uint, courseID string, score, total int) (*model.Progress, error) {
	progress, err := s.ProgressRepo.FindByUserAndCourse(userID, courseID)
	switch err {
	case nil:
		progress.QuizScore = &score
		progress.TotalQuestions = &total
		progress.LastAccessed = time.Now()
		if err := s.ProgressRepo.Save(progress); err != nil {
			return nil, err
		}
		return progress, nil
	case gorm.ErrRecordNotFound:
		progress = &model.Progress{
			UserID:         userID,
			CourseID:       courseID,
			QuizScore:      &score,
			TotalQuestions: &total,
			LastAccessed:   time.Now(),
		}
		if err := s.ProgressRepo.Create(progress); err != nil {
			return nil, err
		}
		return progress, nil
	default:
		return nil, err
	}
}
