package study

import (
	"html"
	"strings"

	"study-desk/internal/domain"
)

// ExportFile is a downloadable artifact: filename, MIME type and content.
type ExportFile struct {
	Filename string
	MIMEType string
	Content  []byte
}

// flashcardsCSV renders a deck as CSV. Every field, header included, is
// double-quoted with embedded quotes doubled (RFC 4180), so commas and
// quotes inside cards survive the round trip.
func flashcardsCSV(cards []domain.FlashCard) []byte {
	var sb strings.Builder
	sb.WriteString(csvRow("Question", "Answer"))
	for _, card := range cards {
		sb.WriteString(csvRow(card.Question, card.Answer))
	}
	return []byte(sb.String())
}

func csvRow(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",") + "\n"
}

// stripHTML converts note markup to plain text: tags are dropped (block
// closers and <br> become newlines) and entities are unescaped.
func stripHTML(content string) string {
	var sb strings.Builder
	sb.Grow(len(content))

	inTag := false
	tagStart := 0
	for i, r := range content {
		switch {
		case r == '<':
			inTag = true
			tagStart = i
		case r == '>' && inTag:
			inTag = false
			if isBlockBreak(content[tagStart+1 : i]) {
				sb.WriteByte('\n')
			}
		case !inTag:
			sb.WriteRune(r)
		}
	}

	text := html.UnescapeString(sb.String())
	return strings.TrimSpace(text)
}

func isBlockBreak(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(tag, "/")))
	switch tag {
	case "br", "/p", "/div", "/li", "/h1", "/h2", "/h3", "/h4", "/h5", "/h6":
		return true
	}
	return false
}
