// file: internals/features/fees/dto/fee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "smartcollege_backend/internals/features/fees/model"
)

type CreateInstallmentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Title     string    `json:"title" validate:"required,min=3,max=100"`
	Amount    int64     `json:"amount" validate:"required,gt=0"`
	DueDate   string    `json:"due_date" validate:"required"` // YYYY-MM-DD
}

func (r *CreateInstallmentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.DueDate = strings.TrimSpace(r.DueDate)
}

func (r *CreateInstallmentRequest) ParseDueDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.DueDate)
}

type UpdateInstallmentRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=3,max=100"`
	Amount  *int64  `json:"amount" validate:"omitempty,gt=0"`
	DueDate *string `json:"due_date"`
}

// Apply mutates the model in place. Returns an error message for a bad due
// date so the controller can 400 it.
func (r *UpdateInstallmentRequest) Apply(m *model.FeeInstallmentModel) error {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Amount != nil {
		m.Amount = *r.Amount
	}
	if r.DueDate != nil {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.DueDate))
		if err != nil {
			return err
		}
		m.DueDate = d
	}
	return nil
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
