// Package selector picks Elliot's canned replies. Input is classified into a
// topic category by ordered keyword rules and a reply is drawn uniformly from
// that category's fixed phrases.
package selector

import (
	"math/rand/v2"
	"strings"
)

type Category string

const (
	CategoryGreeting    Category = "greeting"
	CategoryQuestion    Category = "question"
	CategoryDevelopment Category = "development"
	CategoryPhilosophy  Category = "philosophy"
	CategoryFeelings    Category = "feelings"
	CategoryTechnology  Category = "technology"
	CategoryDefault     Category = "default"
)

// Source is the random source used to draw a phrase. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

type rule struct {
	category Category
	keywords []string
}

func (r rule) matches(lower string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Selector is safe for concurrent use if its Source is.
type Selector struct {
	src Source
}

// New returns a Selector drawing from src, or from the process-wide source
// when src is nil.
func New(src Source) *Selector {
	if src == nil {
		src = globalSource{}
	}
	return &Selector{src: src}
}

// Classify returns the category of input. It never fails: unmatched text
// falls through to CategoryDefault.
func (s *Selector) Classify(input string) Category {
	lower := strings.ToLower(input)
	for _, r := range rules {
		if r.matches(lower) {
			return r.category
		}
	}
	return CategoryDefault
}

// Respond returns a reply for input.
func (s *Selector) Respond(input string) string {
	reply, _ := s.Reply(input)
	return reply
}

// Reply is Respond that also reports the category the reply came from.
func (s *Selector) Reply(input string) (string, Category) {
	c := s.Classify(input)
	list := phrases[c]
	return list[s.src.IntN(len(list))], c
}

// Categories lists every category in rule priority order, Default last.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, CategoryDefault)
}

// Phrases returns a copy of the reply phrases of c.
func Phrases(c Category) []string {
	list := phrases[c]
	out := make([]string, len(list))
	copy(out, list)
	return out
}
