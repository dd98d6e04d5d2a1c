package service

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText trims s. The text is otherwise kept as typed and escaped only
// when rendered. Input that is nothing but markup, such as "<b></b>", has
// no visible content and cleans to "".
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	if visibleText(s) == "" {
		return ""
	}
	return s
}

func visibleText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}
