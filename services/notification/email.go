package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"laundrybook/models"
)

// Service dispatches the booking confirmation once payment has succeeded.
type Service interface {
	SendConfirmation(ctx context.Context, draft models.BookingDraft, total float64) (*models.ConfirmationResult, error)
}

// EmailConfirmationService sends confirmations via SendGrid to the business
// inbox. A dispatch failure is surfaced to the caller; the booking is not
// retried.
type EmailConfirmationService struct {
	Client    *sendgrid.Client
	FromEmail string
	FromName  string
	ToEmail   string
	Logger    *zap.Logger
}

func NewEmailConfirmationService(apiKey, fromEmail, fromName, toEmail string, logger *zap.Logger) *EmailConfirmationService {
	return &EmailConfirmationService{
		Client:    sendgrid.NewSendClient(apiKey),
		FromEmail: fromEmail,
		FromName:  fromName,
		ToEmail:   toEmail,
		Logger:    logger,
	}
}

// ValidateDraft checks the fields the confirmation cannot be sent without.
// Presence-only, like every other check in the flow.
func ValidateDraft(d models.BookingDraft) error {
	if d.Email == "" || d.FirstName == "" || d.LastName == "" {
		return models.NewValidationError("missing required fields: email, firstName, lastName")
	}
	if len(d.SelectedServices) == 0 {
		return models.NewValidationError("no services selected")
	}
	return nil
}

// SendConfirmation validates the draft, generates a booking reference and
// sends the confirmation email. The reference exists even when dispatch
// fails; it is not reused on a retry.
func (s *EmailConfirmationService) SendConfirmation(ctx context.Context, draft models.BookingDraft, total float64) (*models.ConfirmationResult, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	reference := NewBookingReference()
	subject := fmt.Sprintf("Booking Confirmation - %s", reference)

	html, err := renderHTML(draft, total, reference)
	if err != nil {
		return nil, err
	}
	text := renderText(draft, total, reference)

	from := mail.NewEmail(s.FromName, s.FromEmail)
	to := mail.NewEmail("", s.ToEmail)
	message := mail.NewSingleEmail(from, subject, to, text, html)

	resp, err := s.Client.SendWithContext(ctx, message)
	if err != nil {
		s.Logger.Error("confirmation email dispatch failed",
			zap.String("reference", reference), zap.Error(err))
		return nil, fmt.Errorf("failed to send confirmation email: %w", err)
	}
	if resp.StatusCode >= 400 {
		s.Logger.Error("confirmation email rejected",
			zap.String("reference", reference),
			zap.Int("status", resp.StatusCode),
			zap.String("body", resp.Body))
		return nil, fmt.Errorf("failed to send confirmation email: status %d", resp.StatusCode)
	}

	s.Logger.Info("confirmation email sent",
		zap.String("reference", reference),
		zap.Float64("total", total))

	return &models.ConfirmationResult{
		BookingReference: reference,
		TotalPrice:       total,
		Message:          "Booking confirmation sent successfully",
	}, nil
}
