// Package notify delivers best-effort lead notifications to staff email.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"autohub/internal/config"
	"autohub/internal/models"
)

// LeadNotification carries the payload of a new-lead email.
type LeadNotification struct {
	Name     string
	Email    string
	Phone    string
	LeadType models.LeadType
	Message  string
}

// Notifier sends a lead notification. Delivery is best effort: callers
// never roll back the lead write when Send fails.
type Notifier interface {
	Send(ctx context.Context, n LeadNotification) error
}

// Resend posts notification emails through the Resend REST API.
type Resend struct {
	apiKey    string
	from      string
	to        string
	dashboard string
	endpoint  string
	client    *http.Client
}

func NewResend(cfg config.NotifyConfig) *Resend {
	return &Resend{
		apiKey:    cfg.APIKey,
		from:      cfg.From,
		to:        cfg.To,
		dashboard: cfg.Dashboard,
		endpoint:  "https://api.resend.com/emails",
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

var leadTypeLabels = map[models.LeadType]string{
	models.LeadGeneralInquiry:   "General Inquiry",
	models.LeadViewingRequest:   "Viewing Request",
	models.LeadFinancingRequest: "Financing Request",
	models.LeadTradeIn:          "Trade-In Request",
	models.LeadSellCar:          "Sell Your Car",
}

func leadTypeLabel(t models.LeadType) string {
	if label, ok := leadTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (r *Resend) Send(ctx context.Context, n LeadNotification) error {
	if r.apiKey == "" || r.to == "" {
		return fmt.Errorf("notify: resend not configured")
	}
	payload := map[string]any{
		"from":    r.from,
		"to":      []string{r.to},
		"subject": fmt.Sprintf("New %s from %s", leadTypeLabel(n.LeadType), n.Name),
		"html":    r.renderHTML(n),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify: resend responded %d", resp.StatusCode)
	}
	return nil
}

func (r *Resend) renderHTML(n LeadNotification) string {
	message := n.Message
	if message == "" {
		message = "No message provided"
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(leadTypeLabel(n.LeadType)))
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(n.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> <a href=\"mailto:%s\">%s</a></p>", html.EscapeString(n.Email), html.EscapeString(n.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> <a href=\"tel:%s\">%s</a></p>", html.EscapeString(n.Phone), html.EscapeString(n.Phone))
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>", html.EscapeString(message))
	if r.dashboard != "" {
		fmt.Fprintf(&b, "<p><a href=\"%s\">View in Dashboard</a></p>", html.EscapeString(r.dashboard))
	}
	return b.String()
}
