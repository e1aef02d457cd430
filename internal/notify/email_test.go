package notify

import (
	"strings"
	"testing"
)

func TestBuildPlainResultEmail(t *testing.T) {
	body := buildPlainResultEmail(
		"Ghana 2-1 Morocco",
		"Ghana prevail over Morocco.",
		[]string{"1' Kickoff", "34' Goal"},
		"https://anl2026.africa/news?match=4",
	)

	for _, want := range []string{
		"Ghana 2-1 Morocco",
		"Ghana prevail over Morocco.",
		"Key moments:",
		"- 1' Kickoff",
		"- 34' Goal",
		"Read full match centre: https://anl2026.africa/news?match=4",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("plain body missing %q", want)
		}
	}
}

func TestBuildPlainResultEmailOmitsEmptySections(t *testing.T) {
	body := buildPlainResultEmail("Ghana 2-1 Morocco", "Summary.", nil, "")
	if strings.Contains(body, "Key moments") {
		t.Error("empty timeline must be omitted")
	}
	if strings.Contains(body, "match centre") {
		t.Error("missing link must be omitted")
	}
}

func TestBuildHTMLResultEmail(t *testing.T) {
	body := buildHTMLResultEmail(
		"Ghana 2-1 Morocco",
		"Summary line.",
		[]string{"HT Ghana 1-0 Morocco"},
		"https://anl2026.africa/news?match=4",
	)

	for _, want := range []string{
		"<h2", "Ghana 2-1 Morocco",
		"<li>HT Ghana 1-0 Morocco</li>",
		`href="https://anl2026.africa/news?match=4"`,
		"African Nations League 2026",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestSendMatchResultSkipsWithoutConfig(t *testing.T) {
	mailer := NewMailer("", "")

	delivery := mailer.SendMatchResult(ResultEmail{
		RecipientEmail: "federation@example.test",
		Team1Name:      "Ghana",
		Team2Name:      "Morocco",
	})
	if delivery.Delivered {
		t.Error("send must be skipped without an API key")
	}
	if delivery.Reason != "missing-api-key" {
		t.Errorf("reason = %q, want missing-api-key", delivery.Reason)
	}

	delivery = NewMailer("re_test_key", "").SendMatchResult(ResultEmail{})
	if delivery.Delivered || delivery.Reason != "no-recipient" {
		t.Errorf("no recipient: got %+v", delivery)
	}
}
