package controller

import (
	"codista_lms/internal/service"
	"codista_lms/internal/util"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseController struct {
	CourseService  *service.CourseService
	StorageService *service.StorageService
}

func NewCourseController(courseService *service.CourseService, storageService *service.StorageService) *CourseController {
	return &CourseController{
		CourseService:  courseService,
		StorageService: storageService,
	}
}

// List godoc
// @Summary List all courses, newest first
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.CourseService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}

// Create godoc
// @Summary Create a course (instructor only)
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseRequest true "course fields"
// @Success 200 {object} model.Course
// @Failure 403 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}

// UploadVideo godoc
// @Summary Attach an uploaded video to a course (owning instructor only)
// @Tags courses
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "course id"
// @Param video formData file true "video file"
// @Success 200 {object} model.Course
// @Failure 403 {object} util.ErrorBody
// @Failure 404 {object} util.ErrorBody
// @Router /api/courses/{id}/video [post]
func (c *CourseController) UploadVideo(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	courseID := ctx.Param("id")

	fileHeader, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	mimeType, err := util.ValidateMimeType(file, []string{util.MimeVideo, util.MimeOctetStream})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("courses/%s/%s%s", courseID, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	course, err := c.CourseService.SetVideoURL(ctx.Request.Context(), claims.UserID, courseID, url)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx, "Access denied. Course owner only.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, course)
}
