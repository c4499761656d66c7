package model

import "time"

// Course 课程
type Course struct {
	ID          int64     `json:"id,string" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	TeacherID   int64     `json:"teacherId,string" db:"teacher_id"`
	TeacherName string    `json:"teacherName" db:"teacher_name"`
	CreateAt    time.Time `json:"createAt" db:"create_at"`
}

// Enrollment 选课记录，(course_id, student_id) 唯一
type Enrollment struct {
	ID        int64     `json:"id,string" db:"id"`
	CourseID  int64     `json:"courseId,string" db:"course_id"`
	StudentID int64     `json:"studentId,string" db:"student_id"`
	CreateAt  time.Time `json:"createAt" db:"create_at"`
}
