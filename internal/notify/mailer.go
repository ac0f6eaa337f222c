package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"food-preorder/internal/pkg/config"
	"food-preorder/internal/usecase"
	"food-preorder/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

const sendTimeout = 10 * time.Second

// SMTPMailer delivers mail on background goroutines. Delivery failures are
// logged and recorded on the notification job, never returned to the caller.
type SMTPMailer struct {
	client  *mail.Client
	from    string
	enabled bool
	jobs    usecase.NotificationRepository
}

func NewSMTPMailer(cfg config.MailConfig, jobs usecase.NotificationRepository) (*SMTPMailer, error) {
	m := &SMTPMailer{
		from:    cfg.From,
		enabled: cfg.Enabled,
		jobs:    jobs,
	}
	if !cfg.Enabled {
		return m, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	m.client = client

	return m, nil
}

func (m *SMTPMailer) SendWelcome(to, name string) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account is ready. Browse the menu, pick a pickup slot and place your first order.\n",
		name,
	)
	go m.deliver(to, "Welcome to Food Preorder", body)
}

func (m *SMTPMailer) SendPasswordResetOTP(to, name, code string, validFor time.Duration) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour password reset code is %s. It expires in %d minutes.\n\nIf you did not request this, ignore this email.\n",
		name, code, int(validFor.Minutes()),
	)
	go m.deliver(to, "Your password reset code", body)
}

func (m *SMTPMailer) SendOrderConfirmation(jobID uuid.UUID, order *readmodel.OrderRM) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour order %s is confirmed.\n\nPickup: %s between %s and %s\nTotal: %.2f\n\nYou can cancel until %s.\n",
		order.UserName,
		order.OrderNumber,
		order.SlotDate.Format("2006-01-02"),
		order.SlotStartTime,
		order.SlotEndTime,
		float64(order.TotalCents)/100,
		order.CancellationDeadline.Format(time.RFC1123),
	)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := m.send(order.UserEmail, "Order confirmed: "+order.OrderNumber, body); err != nil {
			slog.Warn("order confirmation delivery failed",
				"job_id", jobID, "order_number", order.OrderNumber, "error", err)
			if markErr := m.jobs.MarkFailed(ctx, jobID, err.Error()); markErr != nil {
				slog.Warn("failed to mark notification job failed", "job_id", jobID, "error", markErr)
			}
			return
		}

		if err := m.jobs.MarkSent(ctx, jobID); err != nil {
			slog.Warn("failed to mark notification job sent", "job_id", jobID, "error", err)
		}
	}()
}

func (m *SMTPMailer) deliver(to, subject, body string) {
	if err := m.send(to, subject, body); err != nil {
		slog.Warn("mail delivery failed", "to", to, "subject", subject, "error", err)
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	if !m.enabled {
		slog.Debug("mail disabled, skipping delivery", "to", to, "subject", subject)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	return m.client.DialAndSendWithContext(ctx, msg)
}
