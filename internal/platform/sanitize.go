package platform

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	headingPattern = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	bulletPattern  = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
	blankRuns      = regexp.MustCompile(`\n{3,}`)

	// formatTag matches the lowercase formatting elements a generated answer
	// may arrive wrapped in. Generics like List<String>, comparisons like
	// a<b and quoted tags such as <script> are not formatting.
	formatTag = regexp.MustCompile(`</?(?:a|b|br|code|div|em|h[1-6]|i|li|ol|p|pre|span|strong|u|ul)(?:\s+[a-z-]+(?:="[^"]*"|='[^']*')?)*\s*/?>`)
	tagName   = regexp.MustCompile(`^</?([a-z0-9]+)`)

	textPolicy = bluemonday.StrictPolicy()
)

// Bullet replaces markdown list markers in cleaned summaries
const Bullet = "• "

// CleanText returns backend text for display. Plain text is kept as is;
// text formatted with HTML elements is reduced to its words, with line
// breaks for block elements.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	tags := formatTag.FindAllStringIndex(s, -1)
	if len(tags) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range tags {
		b.WriteString(escapeText(s[last:loc[0]]))
		b.WriteString(layoutTag(s[loc[0]:loc[1]]))
		last = loc[1]
	}
	b.WriteString(escapeText(s[last:]))

	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(b.String())))
}

// escapeText keeps '<' outside formatting elements as literal text
func escapeText(s string) string {
	return strings.ReplaceAll(s, "<", "&lt;")
}

// layoutTag returns the tag followed by the text layout it stands for
func layoutTag(tag string) string {
	m := tagName.FindStringSubmatch(tag)
	if m == nil {
		return tag
	}
	closing := strings.HasPrefix(tag, "</")
	switch name := m[1]; {
	case name == "br":
		return tag + "\n"
	case name == "li" && !closing:
		return tag + Bullet
	case closing && (name == "p" || name == "div" || name == "li" || name == "pre" || name[0] == 'h'):
		return tag + "\n"
	}
	return tag
}

// CleanSummary turns a markdown summary into plain text: headings lose
// their hashes, bold markers go, and list items start with a bullet
func CleanSummary(markdown string) string {
	s := headingPattern.ReplaceAllString(markdown, "")
	s = strings.ReplaceAll(s, "**", "")
	s = bulletPattern.ReplaceAllString(s, Bullet)
	s = CleanText(s)
	return blankRuns.ReplaceAllString(s, "\n\n")
}
