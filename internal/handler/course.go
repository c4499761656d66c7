package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Kimani145/Corner/internal/middleware"
	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/response"
)

// CourseHandler 课程处理器
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler 创建课程处理器
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListAll 获取全部课程
// GET /api/v1/courses
func (h *CourseHandler) ListAll(c *gin.Context) {
	courses, err := h.courseService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"list":  courses,
		"total": len(courses),
	})
}

// ListMine 按角色获取自己的课程
// GET /api/v1/courses/mine
// 学生返回已选课程，教师返回开设的课程
func (h *CourseHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var courses []*model.Course
	var err error
	if middleware.GetRole(c) == model.RoleTeacher {
		courses, err = h.courseService.ListForTeacher(c.Request.Context(), userID)
	} else {
		courses, err = h.courseService.ListForStudent(c.Request.Context(), userID)
	}
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"list":  courses,
		"total": len(courses),
	})
}

// Create 教师创建课程
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotTeacher) {
			response.Forbidden(c)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, course)
}

// Enroll 学生批量选课
// POST /api/v1/courses/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	result, err := h.courseService.Enroll(c.Request.Context(), middleware.GetUserID(c), req.CourseIDs)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			response.Error(c, response.CodeCourseNotFound)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, result)
}
