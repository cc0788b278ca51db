package repository

import (
	"codista_lms/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.Progress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) Save(progress *model.Progress) error {
	return r.DB.Save(progress).Error
}

// FindByUserAndCourse returns the single row for the pair, or
// gorm.ErrRecordNotFound. The unique composite index keeps it single.
func (r *ProgressRepository) FindByUserAndCourse(userID uint, courseID string) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.Progress, error) {
	var rows []model.Progress
	err := r.DB.Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&rows).Error
	return rows, err
}
