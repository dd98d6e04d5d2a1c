package telegram

import (
	"strings"
	"unicode/utf8"
)

// SplitMessage splits a message into chunks of maxLen characters,
// trying to split at newlines when possible.
func SplitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	for len(text) > 0 {
		if utf8.RuneCountInString(text) <= maxLen {
			parts = append(parts, text)
			break
		}

		runes := []rune(text)
		splitAt := maxLen

		// Try to split at a newline
		chunk := string(runes[:maxLen])
		if lastNewline := strings.LastIndex(chunk, "\n"); lastNewline > 0 {
			if n := utf8.RuneCountInString(chunk[:lastNewline]); n > maxLen/2 {
				splitAt = n + 1
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		text = string(runes[splitAt:])
	}

	return parts
}

// PackBlocks concatenates blocks into as few messages of at most maxLen
// characters as possible, never cutting inside a block. A block that is
// longer than maxLen on its own is split with SplitMessage, so callers
// formatting HTML keep each block under the limit.
func PackBlocks(blocks []string, maxLen int) []string {
	var (
		pages  []string
		cur    strings.Builder
		curLen int
	)
	flush := func() {
		if cur.Len() > 0 {
			pages = append(pages, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, block := range blocks {
		n := utf8.RuneCountInString(block)
		if n > maxLen {
			flush()
			pages = append(pages, SplitMessage(block, maxLen)...)
			continue
		}
		if curLen+n > maxLen {
			flush()
		}
		cur.WriteString(block)
		curLen += n
	}
	flush()

	return pages
}
