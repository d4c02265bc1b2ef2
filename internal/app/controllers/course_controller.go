package controllers

import (
	"net/http"

	"github.com/admitly/counselor/internal/app/models/dto"
	"github.com/admitly/counselor/internal/app/services"
	"github.com/admitly/counselor/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// GetAllCourses lists the whole catalog
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to fetch courses")
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// SearchCourses matches the q parameter against names and categories
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	courses, err := c.courseService.SearchCourses(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to search courses")
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCoursesByCategory lists one category, "all" or the derived "it" group
// @Router /courses/category/{category} [get]
func (c *CourseController) GetCoursesByCategory(ctx *gin.Context) {
	courses, err := c.courseService.GetCoursesByCategory(ctx.Request.Context(), ctx.Param("category"))
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to fetch courses by category")
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a single course
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid course ID")))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to fetch course")
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// CreateCourse adds a course to the catalog. Admin only.
// @Security BearerAuth
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIErrorWithMessage(ctx, err, "Failed to create course")
		return
	}

	c.logger.Debug().
		Int64("courseID", course.ID).
		Str("by", ctx.GetString(middleware.ContextUsername)).
		Msg("Course created over HTTP")
	ctx.JSON(http.StatusCreated, course)
}
