package model

import "time"

// Question is a help request posted to the community feed.
//
// AUTHOR SNAPSHOT:
// UserName and UserAvatar are captured at creation time, not resolved at
// render time. If the author later changes their profile, existing questions
// keep the old display identity. When the question is posted anonymously the
// snapshot holds the Anonymous placeholder instead — anonymity is applied
// once, at creation, and is not reversible.
//
// Votes is a signed running total (upvotes minus downvotes). AnswerCount is
// maintained incrementally: it is incremented exactly once per accepted
// answer and never recomputed from the answer collection.
//
// Resolved is reserved for a future "mark as resolved" flow; no current
// operation sets it, so it stays false after creation.
type Question struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Course      string    `json:"course"`
	Tags        []string  `json:"tags"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserAvatar  string    `json:"userAvatar"`
	Anonymous   bool      `json:"anonymous"`
	Votes       int       `json:"votes"`
	AnswerCount int       `json:"answerCount"`
	Resolved    bool      `json:"resolved"`
	Urgent      bool      `json:"urgent"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Display identity used when content is posted anonymously.
const (
	AnonymousName   = "Anonymous"
	AnonymousAvatar = "https://picsum.photos/seed/anon/200"
)
