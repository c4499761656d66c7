package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kimani145/Corner/internal/model"
)

var (
	ErrCourseNotFound = errors.New("course not found")
)

// CourseRepository 课程数据访问
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository 创建课程仓库
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create 创建课程
func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	query := `
		INSERT INTO courses (id, name, description, teacher_id, teacher_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING create_at
	`
	return r.db.QueryRow(ctx, query,
		course.ID,
		course.Name,
		course.Description,
		course.TeacherID,
		course.TeacherName,
	).Scan(&course.CreateAt)
}

// Exists 检查课程是否存在
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

// GetByID 通过 ID 获取课程
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	query := `
		SELECT id, name, description, teacher_id, teacher_name, create_at
		FROM courses WHERE id = $1
	`
	course := &model.Course{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.TeacherID,
		&course.TeacherName,
		&course.CreateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// ListAll 获取全部课程
func (r *CourseRepository) ListAll(ctx context.Context) ([]*model.Course, error) {
	query := `
		SELECT id, name, description, teacher_id, teacher_name, create_at
		FROM courses
		ORDER BY create_at DESC
	`
	return r.queryCourses(ctx, query)
}

// ListByTeacher 获取教师开设的课程
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*model.Course, error) {
	query := `
		SELECT id, name, description, teacher_id, teacher_name, create_at
		FROM courses
		WHERE teacher_id = $1
		ORDER BY create_at DESC
	`
	return r.queryCourses(ctx, query, teacherID)
}

// ListByStudent 获取学生已选的课程
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID int64) ([]*model.Course, error) {
	query := `
		SELECT c.id, c.name, c.description, c.teacher_id, c.teacher_name, c.create_at
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.student_id = $1
		ORDER BY e.create_at DESC
	`
	return r.queryCourses(ctx, query, studentID)
}

// Enroll 创建选课记录，重复选课幂等
// 返回是否实际插入了新记录
func (r *CourseRepository) Enroll(ctx context.Context, enrollment *model.Enrollment) (bool, error) {
	query := `
		INSERT INTO enrollments (id, course_id, student_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_id, student_id) DO NOTHING
	`
	result, err := r.db.Exec(ctx, query,
		enrollment.ID,
		enrollment.CourseID,
		enrollment.StudentID,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// queryCourses 执行课程查询并扫描结果
func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...any) ([]*model.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*model.Course
	for rows.Next() {
		course := &model.Course{}
		err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Description,
			&course.TeacherID,
			&course.TeacherName,
			&course.CreateAt,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}
