package handler

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/set-night/elliotlab/internal/config"
	"github.com/set-night/elliotlab/internal/domain"
	tg "github.com/set-night/elliotlab/internal/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func TestCommandName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/comments", "/comments"},
		{"/comment hello there", "/comment"},
		{"/Stats", "/stats"},
		{"/comments@elliot_bot", "/comments"},
		{"/comments@other_bot", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, commandName(tt.text, "elliot_bot"))
		})
	}
}

func TestCommandArg(t *testing.T) {
	assert.Equal(t, "hello there", commandArg("/comment   hello there "))
	assert.Equal(t, "line one\nline two", commandArg("/idea\nline one\nline two"))
	assert.Equal(t, "", commandArg("/comment"))
}

func TestFormatHistoryEscapes(t *testing.T) {
	out := strings.Join(historyBlocks(domain.DialogueHistory{
		domain.NewMessage(domain.SenderUser, "<b>oi</b>", at),
		domain.NewMessage(domain.SenderSystem, "Olá!", at),
	}), "")

	assert.Contains(t, out, "(2 mensagens)")
	assert.Contains(t, out, "&lt;b&gt;oi&lt;/b&gt;")
	assert.Contains(t, out, "🤖 Elliot")
	assert.Contains(t, out, "14/10 09:30")
	assert.Less(t, strings.Index(out, "👤 Você"), strings.Index(out, "🤖 Elliot"))
}

func TestFormatHistoryEmpty(t *testing.T) {
	assert.Contains(t, strings.Join(historyBlocks(nil), ""), "Nenhuma conversa")
}

func TestFormatCommentsKeepsOrderAndLimit(t *testing.T) {
	comments := []domain.Comment{
		{ID: 3, Text: "bye", Author: domain.CommentAuthor, Timestamp: at},
		{ID: 2, Text: "hi", Author: domain.CommentAuthor, Timestamp: at},
		{ID: 1, Text: "first", Author: domain.CommentAuthor, Timestamp: at},
	}

	out := strings.Join(commentBlocks(comments, 2), "")
	assert.Contains(t, out, "(3)")
	assert.Less(t, strings.Index(out, "bye"), strings.Index(out, "hi"))
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "e mais 1")

	assert.Contains(t, strings.Join(commentBlocks(nil, 2), ""), "Nenhum comentário")
}

func TestFormatIdeas(t *testing.T) {
	out := strings.Join(ideaBlocks([]domain.Idea{{Text: "a & b", Timestamp: at, Status: domain.IdeaStatusPending}}, 10), "")
	assert.Contains(t, out, "a &amp; b")
	assert.Contains(t, out, "pending")
}

// assertWholeMarkup checks that every page fits one message and that no
// page break lands inside a tag pair or an entity.
func assertWholeMarkup(t *testing.T, pages []string) {
	t.Helper()
	for i, p := range pages {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), tg.MaxMessageLen, "page %d", i)
		assert.Equal(t, strings.Count(p, "<b>"), strings.Count(p, "</b>"), "page %d", i)
		assert.Equal(t, strings.Count(p, "<i>"), strings.Count(p, "</i>"), "page %d", i)
		if amp := strings.LastIndex(p, "&"); amp >= 0 {
			assert.Contains(t, p[amp:], ";", "page %d", i)
		}
	}
}

func TestHistoryPagesKeepMarkupWhole(t *testing.T) {
	var h domain.DialogueHistory
	for i := 0; i < 50; i++ {
		h = append(h, domain.NewMessage(domain.SenderUser, strings.Repeat("a<b & c ", 60), at))
	}

	blocks := historyBlocks(h)
	pages := tg.PackBlocks(blocks, tg.MaxMessageLen)
	require.Greater(t, len(pages), 1)
	assertWholeMarkup(t, pages)
	assert.Equal(t, strings.Join(blocks, ""), strings.Join(pages, ""))
}

func TestOversizedEntryIsContinued(t *testing.T) {
	h := domain.DialogueHistory{domain.NewMessage(domain.SenderUser, strings.Repeat("<", tg.MaxMessageLen), at)}

	pages := tg.PackBlocks(historyBlocks(h), tg.MaxMessageLen)
	require.Greater(t, len(pages), 1)
	assertWholeMarkup(t, pages)

	joined := strings.Join(pages, "")
	assert.Equal(t, tg.MaxMessageLen, strings.Count(joined, "&lt;"))
}

func TestCommentPagesKeepMarkupWhole(t *testing.T) {
	var comments []domain.Comment
	for i := 0; i < 20; i++ {
		comments = append(comments, domain.Comment{ID: int64(i + 1), Text: strings.Repeat("x&y ", 300), Author: domain.CommentAuthor, Timestamp: at})
	}
	assertWholeMarkup(t, tg.PackBlocks(commentBlocks(comments, 20), tg.MaxMessageLen))
}

func TestFormatStats(t *testing.T) {
	out := formatStats(domain.Stats{CommentCount: 2, IdeaCount: 1, DialogueLength: 4, EngagementPercent: 14})
	assert.Contains(t, out, "Comentários: 2")
	assert.Contains(t, out, "Ideias: 1")
	assert.Contains(t, out, "14%")
}

func TestFormatWelcome(t *testing.T) {
	out := formatWelcome("<Ana>", domain.ThemeLight)
	assert.Contains(t, out, "&lt;Ana&gt;")
	assert.Contains(t, out, "claro")
	assert.Contains(t, out, "/feedback &lt;texto&gt;")
	assert.Contains(t, formatWelcome("", domain.ThemeDark), "visitante")
}

func TestFormatProjects(t *testing.T) {
	out := formatProjects(config.Projects)
	for _, p := range config.Projects {
		assert.Contains(t, out, p.Name)
	}
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "elliot-dev-lab-2026-10-14.json", exportFileName(at))
}
