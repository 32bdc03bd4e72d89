package model

import "time"

// Answer is a reply to a question, identified by QuestionID.
//
// The author snapshot and anonymity semantics match Question. IsBest is
// reserved for a best-answer flow that has no mutation path yet — it stays
// false after creation (the KarmaBestAnswer reward is likewise never
// triggered).
type Answer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"questionId"`
	Content    string    `json:"content"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Anonymous  bool      `json:"anonymous"`
	Votes      int       `json:"votes"`
	IsBest     bool      `json:"isBest"`
	CreatedAt  time.Time `json:"createdAt"`
}
