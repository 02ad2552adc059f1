// file: internals/features/fees/model/fee_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		status  string
		want    FeeStatus
		handled bool
	}{
		{"capture", FeeStatusPaid, true},
		{"settlement", FeeStatusPaid, true},
		{"expire", FeeStatusExpired, true},
		{"cancel", FeeStatusCanceled, true},
		{"pending", "", false},
		{"deny", "", false},
		{"refund", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, handled := MapTransactionStatus(tt.status)
			assert.Equal(t, tt.handled, handled)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarize(t *testing.T) {
	installments := []FeeInstallmentModel{
		{Amount: 50000, Status: FeeStatusPaid},
		{Amount: 50000, Status: FeeStatusPending},
		{Amount: 25000, Status: FeeStatusExpired},
		{Amount: 10000, Status: FeeStatusCanceled},
	}

	s := Summarize(installments)
	assert.Equal(t, int64(125000), s.TotalFee, "canceled installments stay out of the total")
	assert.Equal(t, int64(50000), s.PaidAmount)
	assert.Equal(t, int64(75000), s.RemainingAmount)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestIsPayable(t *testing.T) {
	assert.True(t, (&FeeInstallmentModel{Status: FeeStatusPending}).IsPayable())
	assert.True(t, (&FeeInstallmentModel{Status: FeeStatusExpired}).IsPayable())
	assert.False(t, (&FeeInstallmentModel{Status: FeeStatusPaid}).IsPayable())
	assert.False(t, (&FeeInstallmentModel{Status: FeeStatusCanceled}).IsPayable())
}
