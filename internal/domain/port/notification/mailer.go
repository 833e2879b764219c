package notification

import "context"

// Email is an outgoing transactional message
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends transactional email
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
