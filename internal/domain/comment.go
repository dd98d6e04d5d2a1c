package domain

import "time"

// CommentAuthor is the placeholder author of every comment on the board.
const CommentAuthor = "Visitante"

type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type IdeaStatus string

const (
	IdeaStatusPending IdeaStatus = "pending"
)

type Idea struct {
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
	Status    IdeaStatus `json:"status"`
}
