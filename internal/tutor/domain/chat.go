package domain

import "time"

// Source describes where part of an answer came from. The fields are produced
// by the answer engine and passed through untouched.
type Source struct {
	Document string `json:"document"`
	Page     int    `json:"page,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// Video is a suggested video for a question.
type Video struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Channel string `json:"channel,omitempty"`
}

// ChatEntry is one question/answer interaction in a user's history. Entries
// are written once and never mutated.
type ChatEntry struct {
	ID        int64
	UserID    int64
	Subject   string
	Question  string
	Answer    string
	Sources   []Source
	Videos    []Video
	CreatedAt time.Time
}
