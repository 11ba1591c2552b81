package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

const resendEndpoint = "https://api.resend.com/emails"

// Mailer sends outbound mail through the Resend API. Configuration is
// injected at construction rather than re-read per call.
type Mailer struct {
	apiKey string
	from   string
	logger zerolog.Logger
}

func NewMailer(cfg config.App) Mailer {
	return Mailer{
		apiKey: cfg.ResendAPIKey,
		from:   cfg.ResendFromEmail,
		logger: log.With().Str("component", "mailer").Logger(),
	}
}

// Send delivers an HTML email to the recipients.
func (m Mailer) Send(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if m.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is required to send email")
	}

	from := m.from
	if from == "" {
		from = "Portfolio <onboarding@resend.dev>"
	}

	payload := ResendEmailRequest{
		From:    from,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var resendErr ResendErrorResponse
		if err := json.Unmarshal(respBody, &resendErr); err == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result ResendEmailResponse
	if err := json.Unmarshal(respBody, &result); err == nil {
		m.logger.Info().Str("emailId", result.ID).Strs("to", recipients).Msg("Email sent")
	}

	return nil
}

// SendPasswordReset dispatches the password-recovery email with a reset link
// pointing at the fixed reset page.
func (m Mailer) SendPasswordReset(email, resetURL string) error {
	body := fmt.Sprintf(
		`<p>A password reset was requested for this address.</p>
<p><a href="%s">Reset your password</a></p>
<p>If you did not request this, you can ignore this email.</p>`, resetURL)

	return m.Send("Reset your password", body, []string{email})
}

// SendContactNotification alerts the administrators that a new contact
// message arrived.
func (m Mailer) SendContactNotification(contact models.Contact, adminEmails []string) error {
	if len(adminEmails) == 0 {
		return nil
	}

	body := fmt.Sprintf(
		`<p><strong>%s %s</strong> (%s) sent a new message:</p>
<p><strong>Subject:</strong> %s</p>
<p>%s</p>`,
		contact.FirstName, contact.LastName, contact.Email, contact.Subject, contact.Message)

	return m.Send("New contact message: "+contact.Subject, body, adminEmails)
}
