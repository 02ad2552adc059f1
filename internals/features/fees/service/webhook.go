// file: internals/features/fees/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	model "smartcollege_backend/internals/features/fees/model"
)

// HandleFeeStatusWebhook processes a payment gateway notification and moves
// the matching installment to its new status. Unknown statuses are logged
// and left alone.
func HandleFeeStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	var fee model.FeeInstallmentModel
	if err := db.Where("order_id = ?", orderID).First(&fee).Error; err != nil {
		log.Println("[ERROR] Installment not found for order:", orderID)
		return fmt.Errorf("installment with order_id %s not found", orderID)
	}

	next, handled := model.MapTransactionStatus(status)
	if !handled {
		log.Println("[INFO] Ignoring transaction status:", status)
		return nil
	}

	fee.Status = next
	if next == model.FeeStatusPaid {
		now := time.Now()
		fee.PaidAt = &now
		if txID, ok := body["transaction_id"].(string); ok && txID != "" {
			fee.TransactionID = &txID
		}
	}

	if err := db.Save(&fee).Error; err != nil {
		log.Println("[ERROR] Failed to persist installment status:", err)
		return err
	}
	return nil
}
