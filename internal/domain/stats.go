package domain

import "time"

type Stats struct {
	CommentCount      int `json:"commentCount"`
	IdeaCount         int `json:"ideaCount"`
	DialogueLength    int `json:"dialogueLength"`
	EngagementPercent int `json:"engagementPercent"`
}

// ExportVersion tags every export document.
const ExportVersion = "Elliot Dev Lab v2.0"

// Export is the full snapshot handed out by the export command.
type Export struct {
	ExportID        string          `json:"exportId"`
	DialogueHistory DialogueHistory `json:"dialogueHistory"`
	Comments        []Comment       `json:"comments"`
	Ideas           []Idea          `json:"ideas"`
	ExportDate      time.Time       `json:"exportDate"`
	Version         string          `json:"version"`
}
