// file: internals/features/people/dto/people_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "smartcollege_backend/internals/features/people/model"
)

/* ===================== STUDENTS ===================== */

// CreateStudentRequest provisions the user account and the academic profile
// in one shot (the admin "add student" form).
type CreateStudentRequest struct {
	FullName      string    `json:"full_name" validate:"required,min=3,max=100"`
	Email         string    `json:"email" validate:"required,email"`
	Password      string    `json:"password" validate:"required,min=8"`
	Phone         *string   `json:"phone"`
	CourseID      uuid.UUID `json:"course_id" validate:"required"`
	RollNumber    string    `json:"roll_number" validate:"required,min=1,max=30"`
	Semester      int       `json:"semester" validate:"gte=1,lte=12"`
	AdmissionYear int       `json:"admission_year" validate:"gte=2000,lte=2100"`
	GuardianName  *string   `json:"guardian_name"`
	GuardianPhone *string   `json:"guardian_phone"`
}

func (r *CreateStudentRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.RollNumber = strings.TrimSpace(r.RollNumber)
	if r.Semester == 0 {
		r.Semester = 1
	}
	if r.AdmissionYear == 0 {
		r.AdmissionYear = time.Now().Year()
	}
}

type UpdateStudentRequest struct {
	CourseID      *uuid.UUID `json:"course_id"`
	RollNumber    *string    `json:"roll_number" validate:"omitempty,min=1,max=30"`
	Semester      *int       `json:"semester" validate:"omitempty,gte=1,lte=12"`
	GuardianName  *string    `json:"guardian_name"`
	GuardianPhone *string    `json:"guardian_phone"`
}

func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.CourseID != nil {
		m.CourseID = *r.CourseID
	}
	if r.RollNumber != nil {
		m.RollNumber = strings.TrimSpace(*r.RollNumber)
	}
	if r.Semester != nil {
		m.Semester = *r.Semester
	}
	if r.GuardianName != nil {
		m.GuardianName = r.GuardianName
	}
	if r.GuardianPhone != nil {
		m.GuardianPhone = r.GuardianPhone
	}
}

/* ===================== TEACHERS ===================== */

type CreateTeacherRequest struct {
	FullName      string     `json:"full_name" validate:"required,min=3,max=100"`
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=8"`
	Phone         *string    `json:"phone"`
	DepartmentID  *uuid.UUID `json:"department_id"`
	Designation   string     `json:"designation" validate:"omitempty,max=100"`
	Qualification *string    `json:"qualification"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Designation = strings.TrimSpace(r.Designation)
	if r.Designation == "" {
		r.Designation = "Lecturer"
	}
}

type UpdateTeacherRequest struct {
	DepartmentID  *uuid.UUID `json:"department_id"`
	Designation   *string    `json:"designation" validate:"omitempty,max=100"`
	Qualification *string    `json:"qualification"`
}

func (r *UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.DepartmentID != nil {
		m.DepartmentID = r.DepartmentID
	}
	if r.Designation != nil {
		m.Designation = strings.TrimSpace(*r.Designation)
	}
	if r.Qualification != nil {
		m.Qualification = r.Qualification
	}
}
