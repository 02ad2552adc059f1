// file: internals/features/fees/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "smartcollege_backend/internals/features/fees/model"
)

var SnapClient snap.Client

// InitMidtrans is called once at bootstrap (sandbox environment).
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap transaction for one installment and
// returns the token plus the hosted payment page URL.
func GenerateSnapToken(fee model.FeeInstallmentModel, payerName, payerEmail string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fee.OrderID,
			GrossAmt: fee.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fee.ID.String(),
				Name:  fee.Title,
				Price: fee.Amount,
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
