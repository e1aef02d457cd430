// Package notify sends federation contacts their match result emails
// through Resend. Delivery is best effort: a missing API key or recipient
// skips the send instead of failing the simulation that triggered it.
package notify

import (
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

const defaultFrom = "African Nations League <no-reply@anl2026.africa>"

// Delivery reports what happened to one outgoing email.
type Delivery struct {
	Delivered bool
	Reason    string
}

// ResultEmail carries everything needed to compose a match result email.
type ResultEmail struct {
	RecipientEmail string
	Team1Name      string
	Team2Name      string
	Team1Score     int
	Team2Score     int
	Summary        string
	Timeline       []string
	NewsLink       string
}

// Mailer wraps the Resend client. An empty API key leaves the client nil
// and every send is skipped.
type Mailer struct {
	client *resend.Client
	from   string
}

// NewMailer builds a Mailer. An empty from falls back to the tournament's
// no-reply address.
func NewMailer(apiKey, from string) *Mailer {
	m := &Mailer{from: from}
	if m.from == "" {
		m.from = defaultFrom
	}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	}
	return m
}

// SendMatchResult emails one federation its result.
func (m *Mailer) SendMatchResult(email ResultEmail) Delivery {
	if email.RecipientEmail == "" {
		log.Printf("match result email skipped: no recipient provided")
		return Delivery{Reason: "no-recipient"}
	}
	if m.client == nil {
		log.Printf("match result email skipped: resend api key not configured")
		return Delivery{Reason: "missing-api-key"}
	}

	heading := fmt.Sprintf("%s %d-%d %s", email.Team1Name, email.Team1Score, email.Team2Score, email.Team2Name)
	summary := email.Summary
	if summary == "" {
		summary = heading + " full time."
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email.RecipientEmail},
		Subject: "ANL Result: " + heading,
		Text:    buildPlainResultEmail(heading, summary, email.Timeline, email.NewsLink),
		Html:    buildHTMLResultEmail(heading, summary, email.Timeline, email.NewsLink),
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		log.Printf("match result email error: %v", err)
		return Delivery{Reason: err.Error()}
	}
	return Delivery{Delivered: true}
}
