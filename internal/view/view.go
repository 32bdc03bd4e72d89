// Package view contains the pure selectors of the application: functions
// that derive render-ready lists from a store snapshot plus transient UI
// inputs (search text, selected course). Nothing here mutates state or
// touches I/O, so everything is testable with plain function calls.
package view

import (
	"sort"
	"strings"

	"github.com/studyhub/studyhub/internal/model"
)

// FilterQuestions keeps a question when the search text (case-insensitive)
// matches its title, content, or any tag, and the course filter (if any)
// matches the course label exactly. Empty search and empty course keep
// everything; input order is preserved.
func FilterQuestions(questions []model.Question, search, course string) []model.Question {
	out := make([]model.Question, 0, len(questions))
	needle := strings.ToLower(search)
	for _, q := range questions {
		if needle != "" && !matchesQuestion(q, needle) {
			continue
		}
		if course != "" && q.Course != course {
			continue
		}
		out = append(out, q)
	}
	return out
}

func matchesQuestion(q model.Question, needle string) bool {
	if strings.Contains(strings.ToLower(q.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(q.Content), needle) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// FilterResources applies the same rule shape as FilterQuestions over a
// resource's title, description, tags, and course.
func FilterResources(resources []model.Resource, search, course string) []model.Resource {
	out := make([]model.Resource, 0, len(resources))
	needle := strings.ToLower(search)
	for _, r := range resources {
		if needle != "" && !matchesResource(r, needle) {
			continue
		}
		if course != "" && r.Course != course {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesResource(r model.Resource, needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), needle) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// ActivityKind tags an activity item with its originating collection.
type ActivityKind string

const (
	ActivityQuestion ActivityKind = "question"
	ActivityResource ActivityKind = "resource"
)

// ActivityItem is one entry of a user's contribution feed: either a question
// or a resource, tagged with its kind. Exactly one of Question/Resource is
// set, matching Kind.
type ActivityItem struct {
	Kind     ActivityKind    `json:"kind"`
	Question *model.Question `json:"question,omitempty"`
	Resource *model.Resource `json:"resource,omitempty"`
}

// CreatedAt returns the item's creation time regardless of kind.
func (it ActivityItem) CreatedAt() int64 {
	if it.Kind == ActivityQuestion {
		return it.Question.CreatedAt.UnixNano()
	}
	return it.Resource.CreatedAt.UnixNano()
}

// MyActivity returns the union of the user's questions and resources, sorted
// by creation time descending regardless of kind. The sort is stable, so
// items with identical timestamps keep questions-before-resources order.
func MyActivity(questions []model.Question, resources []model.Resource, userID string) []ActivityItem {
	items := make([]ActivityItem, 0, len(questions)+len(resources))
	for i := range questions {
		if questions[i].UserID == userID {
			q := questions[i]
			items = append(items, ActivityItem{Kind: ActivityQuestion, Question: &q})
		}
	}
	for i := range resources {
		if resources[i].UserID == userID {
			r := resources[i]
			items = append(items, ActivityItem{Kind: ActivityResource, Resource: &r})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt() > items[j].CreatedAt()
	})
	return items
}

// RankedUser is a leaderboard row: a user plus their 1-based position.
type RankedUser struct {
	Rank int        `json:"rank"`
	User model.User `json:"user"`
}

// Leaderboard ranks users by karma descending. The sort is stable, so karma
// ties keep the roster's original order; ranks are purely positional with no
// tie sharing.
func Leaderboard(users []model.User) []RankedUser {
	sorted := append([]model.User(nil), users...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Karma > sorted[j].Karma
	})

	out := make([]RankedUser, len(sorted))
	for i, u := range sorted {
		out[i] = RankedUser{Rank: i + 1, User: u}
	}
	return out
}

// AnswersFor returns the answers attached to the given question, preserving
// the collection's newest-first order.
func AnswersFor(answers []model.Answer, questionID string) []model.Answer {
	out := make([]model.Answer, 0, len(answers))
	for _, a := range answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out
}
