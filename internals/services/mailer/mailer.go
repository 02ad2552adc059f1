// file: internals/services/mailer/mailer.go
package mailer

import "log"

// Service sends transactional mail (OTP codes, payment receipts). Errors are
// logged, not returned: mail delivery never decides a request's outcome.
type Service interface {
	Send(to, subject, body string)
}

// consoleService logs mail instead of sending it. Default in dev and in tests.
type consoleService struct{}

func NewConsoleService() Service { return consoleService{} }

func (consoleService) Send(to, subject, body string) {
	log.Printf("[MAIL] to=%s subject=%q\n%s", to, subject, body)
}
