package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/set-night/elliotlab/internal/domain"
	"github.com/set-night/elliotlab/internal/kv"
	"github.com/set-night/elliotlab/internal/selector"
	"github.com/set-night/elliotlab/internal/service"
	"github.com/set-night/elliotlab/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constRand int

func (c constRand) IntN(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}

type recordingSleeper struct {
	waits []time.Duration
}

func (r *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return ctx.Err()
}

func newLab(t *testing.T, backing kv.Store) (*service.Lab, *recordingSleeper) {
	t.Helper()
	sl := &recordingSleeper{}
	lab := service.NewLab(backing, service.LabConfig{
		Think: service.ThinkTime{Base: 1500 * time.Millisecond, Jitter: time.Second},
		Rand:  constRand(0),
		Sleep: sl.Sleep,
	})
	return lab, sl
}

func TestTalk(t *testing.T) {
	ctx := context.Background()
	lab, sl := newLab(t, kv.NewMemory())

	ex, err := lab.Talk(ctx, 42, "  oi Elliot  ")
	require.NoError(t, err)
	require.NotNil(t, ex)

	assert.Equal(t, domain.SenderUser, ex.Question.Sender)
	assert.Equal(t, "oi Elliot", ex.Question.Text)
	assert.Equal(t, domain.SenderSystem, ex.Reply.Sender)
	assert.Equal(t, selector.CategoryGreeting, ex.Category)
	assert.Equal(t, selector.Phrases(selector.CategoryGreeting)[0], ex.Reply.Text)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, sl.waits)

	h := lab.History(ctx, 42)
	require.Len(t, h, 2)
	assert.Equal(t, ex.Question, h[0])
	assert.Equal(t, ex.Reply, h[1])
}

func TestTalkBlankIsNoop(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemory()
	lab, sl := newLab(t, backing)

	for _, in := range []string{"", "   ", "\n\t", "<b></b>"} {
		ex, err := lab.Talk(ctx, 1, in)
		require.NoError(t, err)
		assert.Nil(t, ex, "input %q", in)
	}
	assert.Empty(t, sl.waits)
	assert.Empty(t, lab.History(ctx, 1))
	assert.Zero(t, backing.Len())
}

func TestTalkCancelledWhileThinking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lab, _ := newLab(t, kv.NewMemory())

	ex, err := lab.Talk(ctx, 7, "hello")
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ex)

	h := lab.History(context.Background(), 7)
	require.Len(t, h, 1)
	assert.Equal(t, domain.SenderUser, h[0].Sender)
}

func TestChatsAreIsolated(t *testing.T) {
	ctx := context.Background()
	backing := kv.NewMemory()
	lab, _ := newLab(t, backing)

	require.NotNil(t, lab.Comment(ctx, 1, "first chat"))
	lab.ToggleTheme(ctx, 1)

	assert.Empty(t, lab.Comments(ctx, 2))
	assert.Equal(t, domain.ThemeDark, lab.Theme(ctx, 2))
	assert.Equal(t, domain.ThemeLight, lab.Theme(ctx, 1))

	_, ok, err := backing.Get(ctx, service.ChatPrefix(1)+store.KeyComments)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCommentAndIdea(t *testing.T) {
	ctx := context.Background()
	lab, _ := newLab(t, kv.NewMemory())

	assert.Nil(t, lab.Comment(ctx, 1, "   "))
	assert.Nil(t, lab.Idea(ctx, 1, ""))

	assert.Nil(t, lab.Comment(ctx, 1, "<i></i>"))
	c := lab.Comment(ctx, 1, " if a<b then ok ")
	require.NotNil(t, c)
	assert.Equal(t, "if a<b then ok", c.Text)

	idea := lab.Idea(ctx, 1, "add a music player")
	require.NotNil(t, idea)
	assert.Equal(t, domain.IdeaStatusPending, idea.Status)

	assert.Len(t, lab.Comments(ctx, 1), 1)
	assert.Len(t, lab.Ideas(ctx, 1), 1)
	assert.Equal(t, domain.Stats{CommentCount: 1, IdeaCount: 1, EngagementPercent: 3}, lab.Stats(ctx, 1))
}

func TestFeedbackIsNotStored(t *testing.T) {
	backing := kv.NewMemory()
	lab, _ := newLab(t, backing)

	_, ok := lab.Feedback(1, "  ")
	assert.False(t, ok)
	_, ok = lab.Feedback(1, "<b></b>")
	assert.False(t, ok)

	text, ok := lab.Feedback(1, "  more themes please ")
	assert.True(t, ok)
	assert.Equal(t, "more themes please", text)
	assert.Zero(t, backing.Len())
}

func TestExportAndReset(t *testing.T) {
	ctx := context.Background()
	lab, _ := newLab(t, kv.NewMemory())

	_, err := lab.Talk(ctx, 5, "zzz123")
	require.NoError(t, err)
	lab.Comment(ctx, 5, "hi")

	data, err := lab.Export(ctx, 5)
	require.NoError(t, err)
	var doc domain.Export
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.DialogueHistory, 2)
	assert.Equal(t, selector.Phrases(selector.CategoryDefault)[0], doc.DialogueHistory[1].Text)

	lab.Reset(ctx, 5)
	assert.Empty(t, lab.History(ctx, 5))
	assert.Empty(t, lab.Comments(ctx, 5))
}

func TestHistoryLimitFromConfig(t *testing.T) {
	ctx := context.Background()
	lab := service.NewLab(kv.NewMemory(), service.LabConfig{HistoryLimit: 4, Rand: constRand(0)})

	for i := 0; i < 5; i++ {
		_, err := lab.Talk(ctx, 1, "oi")
		require.NoError(t, err)
	}
	assert.Len(t, lab.History(ctx, 1), 4)
}
