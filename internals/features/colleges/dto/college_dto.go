// file: internals/features/colleges/dto/college_dto.go
package dto

import (
	"strings"

	model "smartcollege_backend/internals/features/colleges/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Requests
   ========================================================= */

type CreateCollegeRequest struct {
	Name    string  `json:"name" validate:"required,min=3,max=150"`
	Code    string  `json:"code" validate:"required,min=3,max=20"`
	Address *string `json:"address"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
}

func (r *CreateCollegeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Address = trimPtr(r.Address)
	r.Email = trimPtr(r.Email)
	r.Phone = trimPtr(r.Phone)
}

func (r *CreateCollegeRequest) ToModel() *model.CollegeModel {
	return &model.CollegeModel{
		Name:    r.Name,
		Code:    r.Code,
		Address: r.Address,
		Email:   r.Email,
		Phone:   r.Phone,
	}
}

type UpdateCollegeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=150"`
	Address  *string `json:"address"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

// Apply copies only the provided fields onto m.
func (r *UpdateCollegeRequest) Apply(m *model.CollegeModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Address != nil {
		m.Address = trimPtr(r.Address)
	}
	if r.Email != nil {
		m.Email = trimPtr(r.Email)
	}
	if r.Phone != nil {
		m.Phone = trimPtr(r.Phone)
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* =========================================================
   Responses
   ========================================================= */

// PublicCollegeResponse is the lookup-by-code shape used by self-registration;
// it leaks nothing beyond what the signup form needs.
type PublicCollegeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func ToPublicResponse(m *model.CollegeModel) PublicCollegeResponse {
	return PublicCollegeResponse{
		ID:   m.ID.String(),
		Name: m.Name,
		Code: m.Code,
	}
}
