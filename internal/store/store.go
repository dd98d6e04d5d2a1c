// Package store keeps one visitor's dialogue history, comment board, idea
// backlog and theme, mirrored in memory and persisted as JSON into a kv.Store.
//
// All methods are serialized by a single mutex. Persistence failures never
// reach the caller: they are logged and the in-memory mirror keeps serving,
// so a broken backing store degrades to a session that is lost on restart.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/elliotlab/internal/domain"
	"github.com/set-night/elliotlab/internal/kv"
	"github.com/shopspring/decimal"
)

const (
	KeyDialogue = "elliotDialogue"
	KeyComments = "elliotComments"
	KeyIdeas    = "elliotIdeas"
	KeyTheme    = "elliotTheme"

	DefaultHistoryLimit = 50
)

var (
	DefaultDialogueWeight = decimal.NewFromInt(2)
	DefaultCommentWeight  = decimal.NewFromInt(3)

	engagementCap = decimal.NewFromInt(100)
)

type Store struct {
	mu     sync.Mutex
	kv     kv.Store
	log    *slog.Logger
	now    func() time.Time
	limit  int
	loaded bool

	dialogueWeight decimal.Decimal
	commentWeight  decimal.Decimal

	dialogue domain.DialogueHistory
	comments []domain.Comment
	ideas    []domain.Idea
	theme    domain.Theme
	lastID   int64
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHistoryLimit caps the dialogue history at n entries. Values below 1
// keep the default.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithEngagementWeights sets the points scored per dialogue message and per
// comment. Fractional weights are allowed; the total is rounded half away
// from zero. Negative weights keep the defaults.
func WithEngagementWeights(dialogue, comment decimal.Decimal) Option {
	return func(s *Store) {
		if !dialogue.IsNegative() {
			s.dialogueWeight = dialogue
		}
		if !comment.IsNegative() {
			s.commentWeight = comment
		}
	}
}

func New(backing kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:             backing,
		log:            slog.Default(),
		now:            time.Now,
		limit:          DefaultHistoryLimit,
		dialogueWeight: DefaultDialogueWeight,
		commentWeight:  DefaultCommentWeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadDialogue re-reads the dialogue key. A missing key, malformed JSON or a
// record with the wrong shape yields an empty history; an unreachable backing store yields the mirror.
func (s *Store) LoadDialogue(ctx context.Context) domain.DialogueHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if h, ok := load(s, ctx, KeyDialogue, validMessage); ok {
		s.dialogue = s.capped(h)
	}
	return cloneDialogue(s.dialogue)
}

// AppendDialogue appends msg, evicts the oldest entries beyond the history
// limit and persists the whole history.
func (s *Store) AppendDialogue(ctx context.Context, msg domain.Message) domain.DialogueHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	s.dialogue = s.capped(append(s.dialogue, msg))
	s.write(ctx, KeyDialogue, s.dialogue)
	return cloneDialogue(s.dialogue)
}

// AddComment records text as the newest comment.
func (s *Store) AddComment(ctx context.Context, text string) domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	now := s.now()
	c := domain.Comment{
		ID:        s.nextID(now),
		Text:      text,
		Author:    domain.CommentAuthor,
		Timestamp: domain.Stamp(now),
	}
	s.comments = append([]domain.Comment{c}, s.comments...)
	s.write(ctx, KeyComments, s.comments)
	return c
}

// ListComments returns the board newest first.
func (s *Store) ListComments(ctx context.Context) []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return cloneSlice(s.comments)
}

// AddIdea records text as the newest pending idea.
func (s *Store) AddIdea(ctx context.Context, text string) domain.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	idea := domain.Idea{
		Text:      text,
		Timestamp: domain.Stamp(s.now()),
		Status:    domain.IdeaStatusPending,
	}
	s.ideas = append([]domain.Idea{idea}, s.ideas...)
	s.write(ctx, KeyIdeas, s.ideas)
	return idea
}

// ListIdeas returns the backlog newest first.
func (s *Store) ListIdeas(ctx context.Context) []domain.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return cloneSlice(s.ideas)
}

// ResetAll drops the dialogue, comment and idea keys. The theme is kept.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyDialogue, KeyComments, KeyIdeas} {
		if err := s.kv.Remove(ctx, key); err != nil {
			s.log.Warn("remove key", "key", key, "error", err)
		}
	}
	s.dialogue = nil
	s.comments = nil
	s.ideas = nil
	s.loaded = true
	s.log.Info("lab data reset")
}

// ComputeStats returns the counters shown on the lab panel. Engagement is
// the weighted sum of dialogue messages and comments, 2 and 3 points by
// default, rounded to a whole percent and saturating at 100.
func (s *Store) ComputeStats(ctx context.Context) domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	score := decimal.NewFromInt(int64(len(s.dialogue))).Mul(s.dialogueWeight).
		Add(decimal.NewFromInt(int64(len(s.comments))).Mul(s.commentWeight)).
		Round(0)
	if score.GreaterThan(engagementCap) {
		score = engagementCap
	}

	return domain.Stats{
		CommentCount:      len(s.comments),
		IdeaCount:         len(s.ideas),
		DialogueLength:    len(s.dialogue),
		EngagementPercent: int(score.IntPart()),
	}
}

// Theme returns the selected theme, dark when none has been chosen.
func (s *Store) Theme(ctx context.Context) domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTheme(ctx)
}

func (s *Store) SetTheme(ctx context.Context, t domain.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTheme(ctx, t)
}

// ToggleTheme flips between dark and light and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.currentTheme(ctx).Toggle()
	s.setTheme(ctx, t)
	return t
}

// Export snapshots every collection into one document.
func (s *Store) Export(ctx context.Context) domain.Export {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	return domain.Export{
		ExportID:        uuid.NewString(),
		DialogueHistory: cloneDialogue(s.dialogue),
		Comments:        cloneSlice(s.comments),
		Ideas:           cloneSlice(s.ideas),
		ExportDate:      domain.Stamp(s.now()),
		Version:         domain.ExportVersion,
	}
}

// ExportJSON is Export rendered as indented JSON.
func (s *Store) ExportJSON(ctx context.Context) ([]byte, error) {
	return json.MarshalIndent(s.Export(ctx), "", "  ")
}
