package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/domain"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.SendGridConfig) EmailService {
	return &sendGridEmailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridEmailService) send(_ context.Context, to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendQuoteCreated(ctx context.Context, email, name string, quote *domain.Quote) error {
	subject := "Your rental quote request has been received"
	plainText := fmt.Sprintf(
		"Hi %s,\n\nWe received your quote request for %s to %s. The quoted total is $%.2f (plus a refundable $%.2f security deposit). Our team will review it shortly.",
		name,
		quote.RentalPeriod.StartDate.Format("Jan 2, 2006"),
		quote.RentalPeriod.EndDate.Format("Jan 2, 2006"),
		quote.Pricing.TotalAmount,
		quote.Pricing.SecurityDeposit,
	)
	htmlContent := fmt.Sprintf(`
		<html><body>
			<h2>Quote Request Received</h2>
			<p>Hi %s,</p>
			<p>We received your quote request for <strong>%s</strong> to <strong>%s</strong>.</p>
			<p>Quoted total: <strong>$%.2f</strong> (plus a refundable $%.2f security deposit).</p>
			<p>Our team will review it shortly.</p>
		</body></html>
	`,
		name,
		quote.RentalPeriod.StartDate.Format("Jan 2, 2006"),
		quote.RentalPeriod.EndDate.Format("Jan 2, 2006"),
		quote.Pricing.TotalAmount,
		quote.Pricing.SecurityDeposit,
	)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendQuoteStatusUpdate(ctx context.Context, email, name string, quote *domain.Quote) error {
	subject := fmt.Sprintf("Your rental quote is now %s", quote.Status)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour quote has been updated to '%s'. The quoted total is $%.2f, valid until %s.",
		name, quote.Status, quote.Pricing.TotalAmount, quote.ValidUntil.Format("Jan 2, 2006"),
	)
	htmlContent := fmt.Sprintf(`
		<html><body>
			<h2>Quote Update</h2>
			<p>Hi %s,</p>
			<p>Your quote has been updated to <strong>%s</strong>.</p>
			<p>Quoted total: <strong>$%.2f</strong>, valid until %s.</p>
		</body></html>
	`, name, quote.Status, quote.Pricing.TotalAmount, quote.ValidUntil.Format("Jan 2, 2006"))
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRentalConfirmation(ctx context.Context, email, name string, rental *domain.Rental) error {
	subject := "Your rental booking"
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour rental from %s to %s has been booked (status: %s). Total: $%.2f, security deposit: $%.2f.",
		name,
		rental.StartDate.Format("Jan 2, 2006"),
		rental.EndDate.Format("Jan 2, 2006"),
		rental.RentalStatus,
		rental.TotalAmount,
		rental.SecurityDeposit,
	)
	htmlContent := fmt.Sprintf(`
		<html><body>
			<h2>Booking Received</h2>
			<p>Hi %s,</p>
			<p>Your rental from <strong>%s</strong> to <strong>%s</strong> has been booked (status: %s).</p>
			<p>Total: <strong>$%.2f</strong>, security deposit: $%.2f.</p>
		</body></html>
	`,
		name,
		rental.StartDate.Format("Jan 2, 2006"),
		rental.EndDate.Format("Jan 2, 2006"),
		rental.RentalStatus,
		rental.TotalAmount,
		rental.SecurityDeposit,
	)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRentalCancellation(ctx context.Context, email, name string, rental *domain.Rental) error {
	subject := "Your rental has been cancelled"
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour rental from %s to %s has been cancelled.",
		name, rental.StartDate.Format("Jan 2, 2006"), rental.EndDate.Format("Jan 2, 2006"),
	)
	htmlContent := fmt.Sprintf(`
		<html><body>
			<h2>Rental Cancelled</h2>
			<p>Hi %s,</p>
			<p>Your rental from <strong>%s</strong> to <strong>%s</strong> has been cancelled.</p>
		</body></html>
	`, name, rental.StartDate.Format("Jan 2, 2006"), rental.EndDate.Format("Jan 2, 2006"))
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRentalStatusUpdate(ctx context.Context, email, name string, rental *domain.Rental) error {
	subject := fmt.Sprintf("Your rental is now %s", rental.RentalStatus)
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour rental from %s to %s is now '%s'.",
		name, rental.StartDate.Format("Jan 2, 2006"), rental.EndDate.Format("Jan 2, 2006"), rental.RentalStatus,
	)
	htmlContent := fmt.Sprintf(`
		<html><body>
			<h2>Rental Update</h2>
			<p>Hi %s,</p>
			<p>Your rental from <strong>%s</strong> to <strong>%s</strong> is now <strong>%s</strong>.</p>
		</body></html>
	`, name, rental.StartDate.Format("Jan 2, 2006"), rental.EndDate.Format("Jan 2, 2006"), rental.RentalStatus)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}
