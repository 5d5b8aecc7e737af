package fetch

import (
	"regexp"
	"strings"
)

var (
	inlineSpace = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankRun    = regexp.MustCompile(`\n{3,}`)
	bulletMark  = regexp.MustCompile(`^([-*•·▪●◦–]|\d+[.)])\s+`)
)

// CleanText normalizes page text: CRLF to LF, runs of spaces collapsed,
// lines trimmed, and at most one blank line between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}

	result := blankRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanBullet turns list item text into a single line without its bullet marker.
func cleanBullet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	text = bulletMark.ReplaceAllString(text, "")
	return strings.TrimRight(text, " ;")
}
