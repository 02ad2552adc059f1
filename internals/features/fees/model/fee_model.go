// file: internals/features/fees/model/fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeStatus string

const (
	FeeStatusPending  FeeStatus = "pending"
	FeeStatusPaid     FeeStatus = "paid"
	FeeStatusExpired  FeeStatus = "expired"
	FeeStatusCanceled FeeStatus = "canceled"
)

// FeeInstallmentModel is one payable installment of a student's fee plan.
// OrderID is the identifier handed to the payment gateway.
type FeeInstallmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`

	Title   string    `gorm:"size:100;not null" json:"title" validate:"required,min=3,max=100"`
	Amount  int64     `gorm:"not null" json:"amount" validate:"required,gt=0"`
	DueDate time.Time `gorm:"type:date;not null" json:"due_date"`
	Status  FeeStatus `gorm:"size:20;not null;default:'pending'" json:"status"`

	OrderID       string     `gorm:"size:64;uniqueIndex" json:"order_id"`
	TransactionID *string    `gorm:"size:64" json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (FeeInstallmentModel) TableName() string {
	return "fee_installments"
}

func (m *FeeInstallmentModel) IsPayable() bool {
	return m.Status == FeeStatusPending || m.Status == FeeStatusExpired
}

// MapTransactionStatus translates a gateway transaction_status into a fee
// status. The second return is false for statuses we leave untouched
// (pending, deny, and anything unknown).
func MapTransactionStatus(transactionStatus string) (FeeStatus, bool) {
	switch transactionStatus {
	case "capture", "settlement":
		return FeeStatusPaid, true
	case "expire":
		return FeeStatusExpired, true
	case "cancel":
		return FeeStatusCanceled, true
	default:
		return "", false
	}
}

// Summary is the per-student fee rollup shown on the student dashboard.
type Summary struct {
	TotalFee        int64 `json:"total_fee"`
	PaidAmount      int64 `json:"paid_amount"`
	RemainingAmount int64 `json:"remaining_amount"`
}

// Summarize totals a student's installments. Canceled installments do not
// count toward the total owed.
func Summarize(installments []FeeInstallmentModel) Summary {
	var s Summary
	for i := range installments {
		m := &installments[i]
		if m.Status == FeeStatusCanceled {
			continue
		}
		s.TotalFee += m.Amount
		if m.Status == FeeStatusPaid {
			s.PaidAmount += m.Amount
		}
	}
	s.RemainingAmount = s.TotalFee - s.PaidAmount
	return s
}
