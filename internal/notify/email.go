package notify

import (
	"fmt"
	"strings"
)

// buildPlainResultEmail renders the text/plain body of a result email.
func buildPlainResultEmail(heading, summary string, timeline []string, newsLink string) string {
	sections := []string{heading, "", summary}

	if len(timeline) > 0 {
		sections = append(sections, "", "Key moments:")
		for _, entry := range timeline {
			sections = append(sections, "- "+entry)
		}
	}

	if newsLink != "" {
		sections = append(sections, "", "Read full match centre: "+newsLink)
	}

	return strings.Join(sections, "\n")
}

// buildHTMLResultEmail renders the text/html body of a result email.
func buildHTMLResultEmail(heading, summary string, timeline []string, newsLink string) string {
	var timelineSection string
	if len(timeline) > 0 {
		var items strings.Builder
		for _, entry := range timeline {
			fmt.Fprintf(&items, "<li>%s</li>", entry)
		}
		timelineSection = `<h3 style="margin:20px 0 8px;font-size:16px;color:#0E8F48;">Key moments</h3>` +
			`<ul style="margin:0;padding-left:20px;color:#05121A;line-height:1.6;">` + items.String() + `</ul>`
	}

	var linkSection string
	if newsLink != "" {
		linkSection = fmt.Sprintf(`<p style="margin:20px 0;"><a href="%s" style="color:#0E8F48;">Open full match centre</a></p>`, newsLink)
	}

	return fmt.Sprintf(`<!doctype html>
  <html>
    <head>
      <meta charset="utf-8" />
      <title>%s</title>
    </head>
    <body style="margin:0;padding:24px;font-family:Inter,Arial,sans-serif;background:#F9F6EE;color:#05121A;">
      <div style="max-width:560px;margin:0 auto;background:#FFFFFF;border-radius:20px;padding:24px;border:1px solid rgba(5,18,26,0.08);">
        <h2 style="margin:0 0 12px;font-size:22px;color:#0E8F48;">%s</h2>
        <p style="margin:0 0 16px;line-height:1.6;">%s</p>
        %s
        %s
        <p style="margin:28px 0 0;font-size:13px;color:rgba(5,18,26,0.55);">You are receiving this update because your federation is registered for the African Nations League 2026 Championship.</p>
      </div>
    </body>
  </html>`, heading, heading, summary, timelineSection, linkSection)
}
