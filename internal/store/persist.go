package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/set-night/elliotlab/internal/domain"
)

func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	if h, ok := load(s, ctx, KeyDialogue, validMessage); ok {
		s.dialogue = s.capped(h)
	}
	if comments, ok := load(s, ctx, KeyComments, validComment); ok {
		s.comments = comments
	}
	if ideas, ok := load(s, ctx, KeyIdeas, validIdea); ok {
		s.ideas = ideas
	}
	for _, c := range s.comments {
		if c.ID > s.lastID {
			s.lastID = c.ID
		}
	}
}

// load decodes the collection stored under key. It reports false when the
// backing store could not be reached. A missing key, undecodable JSON or any
// record rejected by valid yields an empty collection and reports true so the
// caller replaces its mirror.
func load[T any](s *Store, ctx context.Context, key string, valid func(T) bool) ([]T, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("read key", "key", key, "error", err)
		return nil, false
	}
	if !ok || raw == "" {
		return nil, true
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("malformed stored json, using empty collection", "key", key, "error", err)
		return nil, true
	}
	for i, item := range items {
		if !valid(item) {
			s.log.Warn("invalid stored record, using empty collection", "key", key, "index", i)
			return nil, true
		}
	}
	return items, true
}

func validMessage(m domain.Message) bool {
	return m.Text != "" && (m.Sender == domain.SenderUser || m.Sender == domain.SenderSystem)
}

func validComment(c domain.Comment) bool {
	return c.ID > 0 && c.Text != ""
}

func validIdea(i domain.Idea) bool {
	return i.Text != ""
}

func (s *Store) write(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error("marshal collection", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		s.log.Warn("persist key, keeping in-memory copy", "key", key, "error", err)
	}
}

// currentTheme reads the theme key, falling back to the mirror when the
// backing store is unreachable.
func (s *Store) currentTheme(ctx context.Context) domain.Theme {
	raw, ok, err := s.kv.Get(ctx, KeyTheme)
	switch {
	case err != nil:
		s.log.Warn("read key", "key", KeyTheme, "error", err)
	case !ok:
		s.theme = domain.ThemeDark
	default:
		s.theme = domain.ParseTheme(raw)
	}
	if s.theme == "" {
		return domain.ThemeDark
	}
	return s.theme
}

func (s *Store) setTheme(ctx context.Context, t domain.Theme) {
	s.theme = t
	if err := s.kv.Set(ctx, KeyTheme, string(t)); err != nil {
		s.log.Warn("persist key, keeping in-memory copy", "key", KeyTheme, "error", err)
	}
}

// nextID derives a comment id from the creation time, bumped past the last
// issued id when two comments land in the same millisecond.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) capped(h domain.DialogueHistory) domain.DialogueHistory {
	if len(h) > s.limit {
		h = append(domain.DialogueHistory(nil), h[len(h)-s.limit:]...)
	}
	return h
}

func cloneDialogue(h domain.DialogueHistory) domain.DialogueHistory {
	if h == nil {
		return domain.DialogueHistory{}
	}
	out := make(domain.DialogueHistory, len(h))
	copy(out, h)
	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
