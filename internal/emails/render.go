// Package emails renders the notification e-mails sent during the match lifecycle.
package emails

import (
	"html"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\{\{(.+?)\}\}`)

// Render replaces every {{key}} in template with values[key].
// Keys missing from values are left in place. Substituted text is not rescanned.
func Render(template string, values map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := token[2 : len(token)-2]
		if v, ok := values[key]; ok {
			return v
		}
		return token
	})
}

// Email is a rendered message ready to hand to a sender
type Email struct {
	Template string
	Subject  string
	Text     string
	HTML     string
}

func newEmail(template, subject, text string) Email {
	text = strings.TrimSpace(text) + "\n"
	return Email{
		Template: template,
		Subject:  subject,
		Text:     text,
		HTML:     textToHTML(text),
	}
}

// textToHTML wraps paragraphs of plain text in <p> tags, escaping content
func textToHTML(text string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	for _, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		for i, line := range lines {
			lines[i] = html.EscapeString(line)
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>"))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
	return b.String()
}
