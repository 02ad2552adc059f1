// file: internals/services/mailer/sendgrid.go
package mailer

import (
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridService struct {
	key  string
	from *sgmail.Email
}

var _ Service = (*sendgridService)(nil)

func NewSendgridService(apiKey, fromAddress string) Service {
	return &sendgridService{
		key:  apiKey,
		from: sgmail.NewEmail("Smart College", fromAddress),
	}
}

// NewFromEnv picks sendgrid when a key is configured, console otherwise.
func NewFromEnv(apiKey, fromAddress string) Service {
	if apiKey == "" {
		return NewConsoleService()
	}
	return NewSendgridService(apiKey, fromAddress)
}

func (svc *sendgridService) Send(to, subject, body string) {
	msg := sgmail.NewSingleEmail(svc.from, subject, sgmail.NewEmail("", to), body, body)
	go func() {
		resp, err := sendgrid.NewSendClient(svc.key).Send(msg)
		if err != nil {
			log.Printf("[ERROR] sendgrid send to %s: %v", to, err)
			return
		}
		if resp.StatusCode >= 400 {
			log.Printf("[ERROR] sendgrid send to %s: status=%d body=%s", to, resp.StatusCode, resp.Body)
		}
	}()
}
