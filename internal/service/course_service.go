package service

import (
	"codista_lms/internal/model"
	"codista_lms/internal/repository"
	"codista_lms/internal/util"
	"codista_lms/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	courseListCacheKey = "codista:courses"
	courseListCacheTTL = 30 * time.Second
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	UserRepo   *repository.UserRepository
	Redis      *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, userRepo *repository.UserRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		UserRepo:   userRepo,
		Redis:      rdb,
	}
}

type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
	Category    string `json:"category"`
}

// List returns the full catalog newest first, served from the redis
// cache when one is configured.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, courseListCacheKey).Bytes()
		if err == nil {
			var courses []model.Course
			if err := json.Unmarshal(cached, &courses); err == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, courseListCacheKey, payload, courseListCacheTTL).Err(); err != nil {
				logger.Log.Warn("course cache write failed", zap.Error(err))
			}
		}
	}

	return courses, nil
}

// Create persists a new course for the instructor. The instructor's
// display name is read from their stored record, never from the
// request body.
func (s *CourseService) Create(ctx context.Context, instructorID uint, req CourseRequest) (*model.Course, error) {
	instructor, err := s.UserRepo.FindByID(instructorID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:          req.Title,
		Description:    req.Description,
		VideoURL:       req.VideoURL,
		Category:       req.Category,
		InstructorID:   instructor.ID,
		InstructorName: instructor.Name,
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return course, nil
}

func (s *CourseService) Get(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

// SetVideoURL points a course at a newly uploaded video object. Only
// the owning instructor may do this.
func (s *CourseService) SetVideoURL(ctx context.Context, instructorID uint, courseID, videoURL string) (*model.Course, error) {
	course, err := s.Get(courseID)
	if err != nil {
		return nil, err
	}

	if course.InstructorID != instructorID {
		return nil, util.ErrPermissionDenied
	}

	if err := s.CourseRepo.UpdateVideoURL(courseID, videoURL); err != nil {
		return nil, err
	}
	course.VideoURL = videoURL

	s.invalidateCache(ctx)
	return course, nil
}

func (s *CourseService) invalidateCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, courseListCacheKey).Err(); err != nil {
		logger.Log.Warn("course cache invalidation failed", zap.Error(err))
	}
}
