package store

import (
	"time"

	"github.com/studyhub/studyhub/internal/model"
)

// Seed dataset: the canonical demo community every fresh process starts
// with. IDs are fixed (u1, q1, r1, ...) so the demo login and fixtures can
// reference each other.

func seedUsers() []model.User {
	return []model.User{
		{
			ID:            "u1",
			Name:          "Alex Rivera",
			Email:         "arivera@university.edu",
			Avatar:        "https://picsum.photos/seed/u1/200",
			Karma:         1250,
			Contributions: 45,
			Role:          model.RoleUser,
			JoinedAt:      time.Date(2023, 9, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "u2",
			Name:          "Sarah Chen",
			Email:         "schen@university.edu",
			Avatar:        "https://picsum.photos/seed/u2/200",
			Karma:         2100,
			Contributions: 89,
			Role:          model.RoleTA,
			JoinedAt:      time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

// demoUser is the profile the designated demo address logs in as. It is the
// first seed user; karma 1250 / contributions 45 are part of the canonical
// fixture and are re-applied on every demo login.
func demoUser() model.User {
	return seedUsers()[0]
}

func seedQuestions() []model.Question {
	return []model.Question{
		{
			ID:          "q1",
			Title:       "Difficulty understanding backpropagation in Neural Networks",
			Content:     "Can someone explain how the chain rule is applied in multi-layer perceptrons? I am stuck on the weight updates for the hidden layers.",
			Course:      "CS401: Artificial Intelligence",
			Tags:        []string{"AI", "NeuralNetworks", "Math"},
			UserID:      "u1",
			UserName:    "Alex Rivera",
			UserAvatar:  "https://picsum.photos/seed/u1/200",
			Votes:       12,
			AnswerCount: 3,
			Urgent:      true,
			CreatedAt:   time.Now().Add(-2 * time.Hour),
		},
		{
			ID:          "q2",
			Title:       "Review for Econ 101 Midterm?",
			Content:     "Does anyone have a study guide for the upcoming macroeconomics midterm? Looking for key concepts in IS-LM models.",
			Course:      "ECON101: Macroeconomics",
			Tags:        []string{"Midterm", "StudyGuide"},
			UserID:      "u3",
			UserName:    "Jordan Lee",
			UserAvatar:  "https://picsum.photos/seed/u3/200",
			Anonymous:   true,
			Votes:       8,
			AnswerCount: 1,
			Resolved:    true,
			CreatedAt:   time.Now().Add(-24 * time.Hour),
		},
	}
}

func seedResources() []model.Resource {
	return []model.Resource{
		{
			ID:          "r1",
			Title:       "Organic Chemistry II - Reaction Cheat Sheet",
			Description: "A concise summary of all nucleophilic substitution and elimination reactions covered in lecture.",
			Course:      "CHEM202: Organic Chemistry",
			Tags:        []string{"Chemistry", "CheatSheet"},
			Link:        "https://example.com/chem-notes.pdf",
			UserID:      "u2",
			UserName:    "Sarah Chen",
			Votes:       45,
			Downloads:   128,
			CreatedAt:   time.Now().Add(-48 * time.Hour),
		},
	}
}

// PopularCourses is the course filter list offered by the dashboard sidebar.
var PopularCourses = []string{
	"CS401: Artificial Intelligence",
	"ECON101: Macroeconomics",
	"CHEM202: Organic Chemistry",
	"MATH301: Linear Algebra",
	"ENG102: Composition II",
}

// Courses returns the popular course labels.
func (s *Store) Courses() []string {
	return append([]string(nil), PopularCourses...)
}
