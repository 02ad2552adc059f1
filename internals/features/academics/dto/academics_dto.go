// file: internals/features/academics/dto/academics_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "smartcollege_backend/internals/features/academics/model"
)

/* ===================== DEPARTMENTS ===================== */

type CreateDepartmentRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=150"`
	Code     string  `json:"code" validate:"required,min=2,max=20"`
	HeadName *string `json:"head_name"`
}

func (r *CreateDepartmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

func (r *CreateDepartmentRequest) ToModel(collegeID uuid.UUID) *model.DepartmentModel {
	return &model.DepartmentModel{
		CollegeID: collegeID,
		Name:      r.Name,
		Code:      r.Code,
		HeadName:  r.HeadName,
	}
}

type UpdateDepartmentRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=150"`
	Code     *string `json:"code" validate:"omitempty,min=2,max=20"`
	HeadName *string `json:"head_name"`
}

func (r *UpdateDepartmentRequest) Apply(m *model.DepartmentModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Code != nil {
		m.Code = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
	if r.HeadName != nil {
		m.HeadName = r.HeadName
	}
}

/* ===================== COURSES ===================== */

type CreateCourseRequest struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=2,max=150"`
	Code         string    `json:"code" validate:"required,min=2,max=20"`
	Semesters    int       `json:"semesters" validate:"gte=1,lte=12"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	if r.Semesters == 0 {
		r.Semesters = 6
	}
}

func (r *CreateCourseRequest) ToModel(collegeID uuid.UUID) *model.CourseModel {
	return &model.CourseModel{
		CollegeID:    collegeID,
		DepartmentID: r.DepartmentID,
		Name:         r.Name,
		Code:         r.Code,
		Semesters:    r.Semesters,
	}
}

type UpdateCourseRequest struct {
	DepartmentID *uuid.UUID `json:"department_id"`
	Name         *string    `json:"name" validate:"omitempty,min=2,max=150"`
	Code         *string    `json:"code" validate:"omitempty,min=2,max=20"`
	Semesters    *int       `json:"semesters" validate:"omitempty,gte=1,lte=12"`
}

func (r *UpdateCourseRequest) Apply(m *model.CourseModel) {
	if r.DepartmentID != nil {
		m.DepartmentID = *r.DepartmentID
	}
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Code != nil {
		m.Code = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
	if r.Semesters != nil {
		m.Semesters = *r.Semesters
	}
}

/* ===================== SUBJECTS ===================== */

type CreateSubjectRequest struct {
	CourseID  uuid.UUID  `json:"course_id" validate:"required"`
	Name      string     `json:"name" validate:"required,min=2,max=150"`
	Code      string     `json:"code" validate:"required,min=2,max=20"`
	Semester  int        `json:"semester" validate:"gte=1,lte=12"`
	TeacherID *uuid.UUID `json:"teacher_id"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	if r.Semester == 0 {
		r.Semester = 1
	}
}

func (r *CreateSubjectRequest) ToModel(collegeID uuid.UUID) *model.SubjectModel {
	return &model.SubjectModel{
		CollegeID: collegeID,
		CourseID:  r.CourseID,
		Name:      r.Name,
		Code:      r.Code,
		Semester:  r.Semester,
		TeacherID: r.TeacherID,
	}
}

type UpdateSubjectRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=2,max=150"`
	Code      *string    `json:"code" validate:"omitempty,min=2,max=20"`
	Semester  *int       `json:"semester" validate:"omitempty,gte=1,lte=12"`
	TeacherID *uuid.UUID `json:"teacher_id"`
}

func (r *UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Code != nil {
		m.Code = strings.ToUpper(strings.TrimSpace(*r.Code))
	}
	if r.Semester != nil {
		m.Semester = *r.Semester
	}
	if r.TeacherID != nil {
		m.TeacherID = r.TeacherID
	}
}
