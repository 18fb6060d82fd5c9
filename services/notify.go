package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier emails the site owner when a contact message arrives.
// It is inert when no API key is configured.
type ContactNotifier struct {
	apiKey    string
	fromEmail string
	toEmail   string
	client    *http.Client
}

func NewContactNotifier(apiKey, fromEmail, toEmail string) *ContactNotifier {
	return &ContactNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether notification delivery is configured.
func (n *ContactNotifier) Enabled() bool {
	return n.apiKey != "" && n.toEmail != ""
}

// NotifyContact sends the owner an email describing the new message. Callers
// treat failures as non-fatal: the contact row is already persisted.
func (n *ContactNotifier) NotifyContact(contact models.Contact) error {
	if !n.Enabled() {
		return nil
	}

	subject := contact.Subject
	if subject == "" {
		subject = "New contact message"
	}

	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s (%s)</p><p>%s</p>",
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		html.EscapeString(contact.Message),
	)

	from := n.fromEmail
	if from == "" {
		from = "Portfolio <onboarding@resend.dev>"
	}

	payload := resendEmailRequest{
		From:    from,
		To:      []string{n.toEmail},
		Subject: subject,
		Html:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var errResp resendErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("email API returned %d: %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("email API returned %d", resp.StatusCode)
	}

	log.Info().Str("to", n.toEmail).Msg("Contact notification sent")
	return nil
}
