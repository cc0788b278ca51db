package controller

import (
	"codista_lms/internal/service"
	"codista_lms/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// ListByCourse godoc
// @Summary Questions for a course, newest first, replies inline
// @Tags questions
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {array} model.Question
// @Router /api/questions/{courseId} [get]
func (c *QuestionController) ListByCourse(ctx *gin.Context) {
	questions, err := c.QuestionService.ListByCourse(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// Ask godoc
// @Summary Post a question to a course thread
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuestionRequest true "question"
// @Success 200 {object} model.Question
// @Failure 404 {object} util.ErrorBody
// @Router /api/questions [post]
func (c *QuestionController) Ask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Ask(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, question)
}

// Reply godoc
// @Summary Append an instructor reply to a question
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Param body body service.ReplyRequest true "reply"
// @Success 200 {object} model.Reply
// @Failure 403 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/questions/{id}/reply [post]
func (c *QuestionController) Reply(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.QuestionService.Reply(claims.UserID, ctx.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, "Question not found")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, reply)
}
