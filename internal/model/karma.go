package model

// Karma reward amounts, credited to the session user by store mutations.
//
// KarmaBestAnswer is defined for completeness: nothing marks an answer as
// "best" yet, so this reward is currently unreachable.
const (
	KarmaAskQuestion    = 5
	KarmaAnswerQuestion = 10
	KarmaShareResource  = 15
	KarmaBestAnswer     = 20
	KarmaReceiveUpvote  = 1
)
