package telegram_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/set-night/elliotlab/internal/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessageShort(t *testing.T) {
	assert.Equal(t, []string{"olá"}, telegram.SplitMessage("olá", 10))
}

func TestSplitMessagePrefersNewline(t *testing.T) {
	text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 8)
	parts := telegram.SplitMessage(text, 10)

	require.Len(t, parts, 2)
	assert.Equal(t, strings.Repeat("a", 8)+"\n", parts[0])
	assert.Equal(t, strings.Repeat("b", 8), parts[1])
}

func TestSplitMessageCountsRunes(t *testing.T) {
	text := strings.Repeat("ç", 25)
	parts := telegram.SplitMessage(text, 10)

	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 10)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestPackBlocksNeverCutsBlocks(t *testing.T) {
	blocks := []string{"<b>a</b>\n", "<b>bb</b>\n", "<b>ccc</b>\n"}
	pages := telegram.PackBlocks(blocks, 22)

	require.Equal(t, []string{"<b>a</b>\n<b>bb</b>\n", "<b>ccc</b>\n"}, pages)
}

func TestPackBlocksSplitsOversizedBlock(t *testing.T) {
	pages := telegram.PackBlocks([]string{"ok", strings.Repeat("x", 25), "end"}, 10)

	require.Len(t, pages, 5)
	assert.Equal(t, "ok", pages[0])
	assert.Equal(t, "end", pages[4])
	for _, p := range pages {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), 10)
	}
}

func TestPackBlocksEmpty(t *testing.T) {
	assert.Empty(t, telegram.PackBlocks(nil, 10))
}
