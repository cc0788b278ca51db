package service

import (
	"codista_lms/internal/model"
	"codista_lms/internal/repository"
	"codista_lms/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, userRepo *repository.UserRepository) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
	}
}

type QuestionRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

type ReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *QuestionService) ListByCourse(courseID string) ([]model.Question, error) {
	questions, err := s.QuestionRepo.FindByCourse(courseID)
	if err != nil {
		return nil, err
	}
	// Empty slices, not nulls, so thread lists render uniformly.
	for i := range questions {
		if questions[i].Replies == nil {
			questions[i].Replies = []model.Reply{}
		}
	}
	return questions, nil
}

// Ask creates a question with the caller's stored name snapshotted.
// Client-supplied names are never trusted.
func (s *QuestionService) Ask(userID uint, req QuestionRequest) (*model.Question, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	question := &model.Question{
		CourseID: req.CourseID,
		UserID:   user.ID,
		UserName: user.Name,
		Text:     req.Text,
		Replies:  []model.Reply{},
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	return question, nil
}

// Reply appends to the question's thread, snapshotting the caller's
// name and role at post time.
func (s *QuestionService) Reply(userID uint, questionID string, req ReplyRequest) (*model.Reply, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	if _, err := s.QuestionRepo.FindByID(questionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	reply := &model.Reply{
		QuestionID: questionID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserRole:   user.Role,
		Text:       req.Text,
	}

	if err := s.QuestionRepo.AppendReply(reply); err != nil {
		return nil, err
	}

	return reply, nil
}
