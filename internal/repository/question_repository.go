package repository

import (
	"codista_lms/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// FindByCourse lists a course's questions newest first, replies
// preloaded oldest first so threads read top to bottom.
func (r *QuestionRepository) FindByCourse(courseID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("course_id = ?", courseID).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("id = ?", id).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		First(&question).Error
	return &question, err
}

// AppendReply persists a new reply row. Replies are never updated or
// deleted afterwards.
func (r *QuestionRepository) AppendReply(reply *model.Reply) error {
	return r.DB.Create(reply).Error
}
