package webfetch

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// skippedElements are containers whose text content is never visible copy.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"svg":      true,
	"template": true,
}

// StripHTML extracts visible text from an HTML document. Tags are dropped,
// script and style contents are skipped, entities are decoded, and runs of
// whitespace collapse to single spaces.
func StripHTML(doc string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(doc))

	var b strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			// EOF or malformed input; return whatever was collected
			return collapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedElements[string(name)] && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate caps extracted text at max bytes without splitting a
// multi-byte rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
