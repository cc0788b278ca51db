package controller

import (
	"codista_lms/internal/service"
	"codista_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type VideoProgressRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

type QuizProgressRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Score    *int   `json:"score" binding:"required"`
	Total    *int   `json:"total" binding:"required"`
}

// List godoc
// @Summary The caller's progress rows with course details
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.ProgressEntry
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	entries, err := c.ProgressService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

// MarkVideo godoc
// @Summary Mark a course video as viewed (idempotent upsert)
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body VideoProgressRequest true "course reference"
// @Success 200 {object} model.Progress
// @Router /api/progress/video [post]
func (c *ProgressController) MarkVideo(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req VideoProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.MarkVideoViewed(claims.UserID, req.CourseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// SaveQuiz godoc
// @Summary Record a quiz attempt (latest attempt wins)
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuizProgressRequest true "attempt result"
// @Success 200 {object} model.Progress
// @Router /api/progress/quiz [post]
func (c *ProgressController) SaveQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req QuizProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.SaveQuizScore(claims.UserID, req.CourseID, *req.Score, *req.Total)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
