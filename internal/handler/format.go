package handler

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/set-night/elliotlab/internal/config"
	"github.com/set-night/elliotlab/internal/domain"
	tg "github.com/set-night/elliotlab/internal/telegram"
)

const timeLayout = "02/01 15:04"

func themeLabel(t domain.Theme) string {
	if t == domain.ThemeLight {
		return "☀️ claro"
	}
	return "🌙 escuro"
}

func formatWelcome(firstName string, theme domain.Theme) string {
	name := html.EscapeString(firstName)
	if name == "" {
		name = "visitante"
	}
	return fmt.Sprintf(
		"🔬 Olá, <b>%s</b>! Bem-vindo ao <b>Elliot Dev Lab</b>.\n\n"+
			"Envie qualquer mensagem para conversar com o Elliot.\n\n"+
			"📋 <b>Comandos:</b>\n"+
			"/history — Histórico do diálogo\n"+
			"/comment &lt;texto&gt; — Deixar um comentário\n"+
			"/comments — Mural de comentários\n"+
			"/idea &lt;texto&gt; — Sugerir uma ideia\n"+
			"/ideas — Ideias sugeridas\n"+
			"/stats — Estatísticas do laboratório\n"+
			"/theme — Alternar tema\n"+
			"/export — Exportar seus dados\n"+
			"/reset — Apagar todos os dados\n"+
			"/feedback &lt;texto&gt; — Enviar feedback sobre o laboratório\n"+
			"/projects — Rede de projetos Elliot\n\n"+
			"Tema atual: %s",
		name, themeLabel(theme),
	)
}

// Listings are built as blocks, one per entry, and packed into messages by
// tg.PackBlocks so that no message break lands inside a tag or an entity.

// maxEscapeGrowth is how many bytes html.EscapeString can emit per input rune.
const maxEscapeGrowth = 5

// entryTextRunes bounds the raw text put into one block, leaving room for the
// entry header.
const entryTextRunes = (tg.MaxMessageLen - 256) / maxEscapeGrowth

// escapedChunks escapes text in pieces that each fit one message.
func escapedChunks(text string) []string {
	raw := tg.SplitMessage(text, entryTextRunes)
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = html.EscapeString(r)
	}
	return out
}

// entryBlocks renders header followed by text, continuing the text in extra
// blocks when it is too long for one message.
func entryBlocks(header, text string) []string {
	chunks := escapedChunks(text)
	blocks := make([]string, len(chunks))
	for i, c := range chunks {
		if i == 0 {
			c = header + c
		}
		if i == len(chunks)-1 {
			c += "\n"
		}
		blocks[i] = c
	}
	return blocks
}

func historyBlocks(h domain.DialogueHistory) []string {
	if len(h) == 0 {
		return []string{"💬 Nenhuma conversa ainda. Diga oi para o Elliot!"}
	}

	blocks := []string{fmt.Sprintf("💬 <b>Histórico</b> (%d mensagens)\n", len(h))}
	for _, m := range h {
		avatar := "👤 Você"
		if m.Sender == domain.SenderSystem {
			avatar = "🤖 Elliot"
		}
		header := fmt.Sprintf("\n<b>%s</b> <i>%s</i>\n", avatar, m.Timestamp.Format(timeLayout))
		blocks = append(blocks, entryBlocks(header, m.Text)...)
	}
	return blocks
}

func commentBlocks(comments []domain.Comment, limit int) []string {
	if len(comments) == 0 {
		return []string{"📝 Nenhum comentário ainda. Use /comment &lt;texto&gt; para ser o primeiro!"}
	}

	blocks := []string{fmt.Sprintf("📝 <b>Comentários</b> (%d)\n", len(comments))}
	for i, c := range comments {
		if limit > 0 && i == limit {
			blocks = append(blocks, fmt.Sprintf("\n… e mais %d", len(comments)-limit))
			break
		}
		header := fmt.Sprintf("\n<b>%s</b> <i>%s</i>\n", html.EscapeString(c.Author), c.Timestamp.Format(timeLayout))
		blocks = append(blocks, entryBlocks(header, c.Text)...)
	}
	return blocks
}

func ideaBlocks(ideas []domain.Idea, limit int) []string {
	if len(ideas) == 0 {
		return []string{"💡 Nenhuma ideia ainda. Use /idea &lt;texto&gt; para sugerir."}
	}

	blocks := []string{fmt.Sprintf("💡 <b>Ideias</b> (%d)\n", len(ideas))}
	for i, idea := range ideas {
		if limit > 0 && i == limit {
			blocks = append(blocks, fmt.Sprintf("\n… e mais %d", len(ideas)-limit))
			break
		}
		chunks := escapedChunks(idea.Text)
		chunks[0] = "\n• " + chunks[0]
		last := len(chunks) - 1
		chunks[last] += fmt.Sprintf(" <i>(%s, %s)</i>", idea.Status, idea.Timestamp.Format(timeLayout))
		blocks = append(blocks, chunks...)
	}
	return blocks
}

func formatStats(s domain.Stats) string {
	return fmt.Sprintf(
		"📊 <b>Estatísticas</b>\n\n"+
			"💬 Mensagens no diálogo: %d\n"+
			"📝 Comentários: %d\n"+
			"💡 Ideias: %d\n"+
			"🧠 Progresso do Elliot: %d%%",
		s.DialogueLength, s.CommentCount, s.IdeaCount, s.EngagementPercent,
	)
}

func formatProjects(projects []config.Project) string {
	var sb strings.Builder
	sb.WriteString("🌐 <b>Rede Elliot</b> — Projetos Ativos:\n")
	for _, p := range projects {
		fmt.Fprintf(&sb, "\n• <b>%s</b>: %s\n  %s", html.EscapeString(p.Name), html.EscapeString(p.Description), html.EscapeString(p.URL))
	}
	return sb.String()
}

// exportFileName names the export file after the export date.
func exportFileName(t time.Time) string {
	return config.ExportFilePrefix + t.UTC().Format("2006-01-02") + ".json"
}
