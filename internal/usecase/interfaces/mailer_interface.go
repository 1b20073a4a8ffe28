package interfaces

import "context"

type MailMessage struct {
	To       string
	Subject  string
	TextBody string
}

// IMailer delivers transactional e-mail (invites).
type IMailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
