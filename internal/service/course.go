package service

import (
	"context"
	"errors"

	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/pkg/snowflake"
)

var (
	ErrNotTeacher = errors.New("only teachers can create courses")
)

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// EnrollRequest 选课请求，支持一次选多门
type EnrollRequest struct {
	CourseIDs []int64 `json:"course_ids" binding:"required,min=1"`
}

// EnrollResult 选课结果
type EnrollResult struct {
	Enrolled int `json:"enrolled"` // 实际新增的选课数，重复选课不计入
}

// CourseService 课程服务
type CourseService struct {
	courseRepo *repository.CourseRepository
	userRepo   *repository.UserRepository
	sfNode     *snowflake.Node
}

// NewCourseService 创建课程服务
func NewCourseService(courseRepo *repository.CourseRepository, userRepo *repository.UserRepository, sfNode *snowflake.Node) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		sfNode:     sfNode,
	}
}

// Create 教师创建课程
func (s *CourseService) Create(ctx context.Context, teacherID int64, req *CreateCourseRequest) (*model.Course, error) {
	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher.Role != model.RoleTeacher {
		return nil, ErrNotTeacher
	}

	course := &model.Course{
		ID:          s.sfNode.Generate().Int64(),
		Name:        req.Name,
		Description: req.Description,
		TeacherID:   teacher.ID,
		TeacherName: teacher.Nickname,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// ListAll 获取全部课程
func (s *CourseService) ListAll(ctx context.Context) ([]*model.Course, error) {
	return s.courseRepo.ListAll(ctx)
}

// ListForStudent 获取学生已选课程
func (s *CourseService) ListForStudent(ctx context.Context, studentID int64) ([]*model.Course, error) {
	return s.courseRepo.ListByStudent(ctx, studentID)
}

// ListForTeacher 获取教师开设的课程
func (s *CourseService) ListForTeacher(ctx context.Context, teacherID int64) ([]*model.Course, error) {
	return s.courseRepo.ListByTeacher(ctx, teacherID)
}

// Enroll 学生批量选课
// 任何一门课程不存在则整体失败；重复选课幂等，不计入结果
func (s *CourseService) Enroll(ctx context.Context, studentID int64, courseIDs []int64) (*EnrollResult, error) {
	for _, courseID := range courseIDs {
		exists, err := s.courseRepo.Exists(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, repository.ErrCourseNotFound
		}
	}

	result := &EnrollResult{}
	for _, courseID := range courseIDs {
		enrollment := &model.Enrollment{
			ID:        s.sfNode.Generate().Int64(),
			CourseID:  courseID,
			StudentID: studentID,
		}
		inserted, err := s.courseRepo.Enroll(ctx, enrollment)
		if err != nil {
			return nil, err
		}
		if inserted {
			result.Enrolled++
		}
	}

	return result, nil
}
