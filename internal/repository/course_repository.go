package repository

import (
	"codista_lms/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// FindAll returns every course, newest first. The catalog is small by
// design, so there is no pagination.
func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ?", id).First(&course).Error
	return &course, err
}

// FindByIDs loads a batch of courses keyed by ID, used when enriching
// progress listings without an N+1 walk.
func (r *CourseRepository) FindByIDs(ids []string) (map[string]model.Course, error) {
	var courses []model.Course
	if len(ids) == 0 {
		return map[string]model.Course{}, nil
	}
	if err := r.DB.Where("id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]model.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	return byID, nil
}

func (r *CourseRepository) UpdateVideoURL(id, videoURL string) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", id).
		Update("video_url", videoURL).
		Error
}
