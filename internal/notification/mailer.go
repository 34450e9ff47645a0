package notification

import (
	"context"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"hackathon-registration-backend/config"
)

// Sender defines the interface for delivering a single email.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender is a real implementation of Sender using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a sender from the mail configuration.
func NewSMTPSender(cfg *config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers one email over SMTP.
func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

// MailerPool manages a pool of workers for sending confirmation emails.
// Delivery is fire-and-forget: failures are logged with the recipient and
// never reach the submission path.
type MailerPool struct {
	size   int
	jobs   chan string
	sender Sender
	admin  string
}

// NewMailerPool creates a new mailer pool. adminAddress receives a notice
// for every registration; leave it empty to disable the notice.
func NewMailerPool(size int, sender Sender, adminAddress string) *MailerPool {
	return &MailerPool{
		size:   size,
		jobs:   make(chan string, size), // Buffered channel
		sender: sender,
		admin:  adminAddress,
	}
}

// Start launches the worker goroutines.
func (mp *MailerPool) Start(ctx context.Context) {
	for i := 0; i < mp.size; i++ {
		go mp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (mp *MailerPool) worker(ctx context.Context, id int) {
	log.Printf("Mail worker %d started", id)
	for {
		select {
		case email := <-mp.jobs:
			log.Printf("Mail worker %d sending confirmation for %s", id, email)
			mp.sendConfirmation(email)
		case <-ctx.Done():
			log.Printf("Mail worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a confirmation for the given registrant.
func (mp *MailerPool) Dispatch(email string) {
	mp.jobs <- email
}

// Notify queues a confirmation and never fails; delivery errors are
// handled and logged by the workers.
func (mp *MailerPool) Notify(email string) error {
	mp.Dispatch(email)
	return nil
}

// Jobs returns the jobs channel for testing.
func (mp *MailerPool) Jobs() chan string {
	return mp.jobs
}

// sendConfirmation emails the registrant and, when configured, the admin
// notice address.
func (mp *MailerPool) sendConfirmation(email string) {
	body := fmt.Sprintf(
		"Hi,\n\nYour hackathon registration for %s has been received. "+
			"You will hear from us once applications are reviewed.\n", email)
	if err := mp.sender.Send(email, "Registration received", body); err != nil {
		log.Printf("Error sending confirmation to %s: %v", email, err)
	}

	if mp.admin == "" {
		return
	}
	notice := fmt.Sprintf("New registration submitted by %s.\n", email)
	if err := mp.sender.Send(mp.admin, "New registration", notice); err != nil {
		log.Printf("Error sending admin notice for %s: %v", email, err)
	}
}
