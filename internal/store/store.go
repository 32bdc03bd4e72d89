// Package store holds the authoritative application state and provides the
// only sanctioned way to mutate it.
//
// THE STATE CORE:
// The store owns the session user, the three content collections (questions,
// resources, answers), the voted-target set, and the known-user roster that
// feeds the leaderboard. Handlers read snapshots and invoke mutations; the
// pure selectors in internal/view derive everything else.
//
// SNAPSHOT SEMANTICS:
// Every read accessor returns a copy, and mutations that touch an element of
// a collection clone the slice before writing. A caller holding a snapshot
// never observes a partially-applied mutation. A single mutex serializes
// mutations because HTTP handlers run concurrently, even though each mutation
// is one synchronous step.
//
// PERSISTENCE:
// Only the session user is durable, through the repository.UserSlot. Content
// and votes are in-memory and reset on restart. Slot write failures degrade
// to a log line — the session keeps working without durability, it just
// won't survive a restart.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/studyhub/studyhub/internal/apperror"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/repository"
)

// VoteKind selects which collection a vote targets.
type VoteKind string

const (
	VoteQuestion VoteKind = "question"
	VoteResource VoteKind = "resource"
	VoteAnswer   VoteKind = "answer"
)

// Options configures the login policy.
type Options struct {
	// CampusDomain is the required email suffix, e.g. ".edu".
	CampusDomain string
	// DemoEmail maps to the canonical demo profile instead of a fresh one.
	DemoEmail string
}

const (
	defaultCampusDomain = ".edu"
	defaultDemoEmail    = "demo@university.edu"
)

// Store is the application-state container. Create it with New and share one
// instance across the handler tree — there is no ambient global.
type Store struct {
	mu     sync.Mutex
	slot   repository.UserSlot
	logger *slog.Logger

	campusDomain string
	demoEmail    string

	user      *model.User
	users     []model.User
	questions []model.Question
	resources []model.Resource
	answers   []model.Answer

	// voted locks target IDs for the lifetime of the process. One vote per
	// target, either direction; the set is intentionally not cleared on
	// login or logout — the lock is session-wide, not per-user.
	voted map[string]struct{}
}

// New creates a Store seeded with the demo dataset. Call Restore afterwards
// to pick up a previously persisted session user.
func New(slot repository.UserSlot, opts Options, logger *slog.Logger) *Store {
	if opts.CampusDomain == "" {
		opts.CampusDomain = defaultCampusDomain
	}
	if opts.DemoEmail == "" {
		opts.DemoEmail = defaultDemoEmail
	}

	return &Store{
		slot:         slot,
		logger:       logger,
		campusDomain: opts.CampusDomain,
		demoEmail:    opts.DemoEmail,
		users:        seedUsers(),
		questions:    seedQuestions(),
		resources:    seedResources(),
		voted:        make(map[string]struct{}),
	}
}

// Restore loads a persisted session user from the slot, mirroring the
// "already logged in" restore the browser client did on page load. An empty
// slot is the normal logged-out state, not an error.
func (s *Store) Restore(ctx context.Context) error {
	user, err := s.slot.Load(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("store: restoring session user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.upsertRosterLocked(*user)

	s.logger.Info("session restored",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)
	return nil
}

// === READ ACCESSORS ===
// All of these return copies; callers can't reach into store state.

// CurrentUser returns the session user, or nil when logged out.
func (s *Store) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Users returns the known-user roster: the seeded community members plus any
// user who has logged in. This is the leaderboard's input.
func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}

// Questions returns the question collection, newest first.
func (s *Store) Questions() []model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Question(nil), s.questions...)
}

// Resources returns the resource collection, newest first.
func (s *Store) Resources() []model.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Resource(nil), s.resources...)
}

// Answers returns the answer collection, newest first.
func (s *Store) Answers() []model.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Answer(nil), s.answers...)
}

// QuestionByID returns a single question or apperror.ErrNotFound.
func (s *Store) QuestionByID(id string) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.questions {
		if s.questions[i].ID == id {
			q := s.questions[i]
			return &q, nil
		}
	}
	return nil, apperror.NotFound("question", id)
}

// Stats are live collection counts for the dashboard.
type Stats struct {
	Questions int `json:"questions"`
	Answers   int `json:"answers"`
	Resources int `json:"resources"`
}

// Stats returns current collection sizes.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Questions: len(s.questions),
		Answers:   len(s.answers),
		Resources: len(s.resources),
	}
}

// === MUTATIONS ===

// Login authenticates a campus email and makes it the session user.
//
// The designated demo address resolves to the canonical demo profile (fixed
// identity, non-zero karma); any other campus email gets a freshly generated
// profile with zero karma. The result is persisted to the identity slot.
// Non-campus emails are rejected with a validation error and leave the
// session untouched. The voted-target set is deliberately not reset.
func (s *Store) Login(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if !strings.HasSuffix(email, s.campusDomain) {
		return nil, apperror.ValidationFailed("email",
			fmt.Sprintf("only campus emails (%s) are allowed", s.campusDomain))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var user model.User
	if email == s.demoEmail {
		user = demoUser()
		user.Email = email
	} else {
		local, _, _ := strings.Cut(email, "@")
		user = model.User{
			ID:       xid.New().String(),
			Name:     local,
			Email:    email,
			Avatar:   "https://picsum.photos/seed/" + email + "/200",
			Role:     model.RoleUser,
			JoinedAt: time.Now(),
		}
	}

	s.user = &user
	s.upsertRosterLocked(user)
	s.persistUserLocked(ctx)

	s.logger.Info("user logged in",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
	)

	out := user
	return &out, nil
}

// Logout clears the session user and empties the identity slot. Content
// collections are not per-user and stay in place; so does the voted set.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.slot.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear identity slot", slog.String("error", err.Error()))
	}

	s.logger.Info("user logged out")
}

// QuestionInput carries the fields a question is created from. Tags are
// expected pre-split into trimmed, non-empty strings — that is the form
// collaborator's job, not the store's.
type QuestionInput struct {
	Title     string
	Content   string
	Course    string
	Tags      []string
	Anonymous bool
	Urgent    bool
}

// AddQuestion creates a question authored by the session user, prepends it
// to the collection, and awards the ask-question karma reward.
func (s *Store) AddQuestion(ctx context.Context, in QuestionInput) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, apperror.Unauthorized("sign in to ask a question")
	}

	name, avatar := s.user.Name, s.user.Avatar
	if in.Anonymous {
		// Anonymity is applied here, at creation time. The stored snapshot
		// is the placeholder; the real author never renders.
		name, avatar = model.AnonymousName, model.AnonymousAvatar
	}

	q := model.Question{
		ID:         xid.New().String(),
		Title:      in.Title,
		Content:    in.Content,
		Course:     in.Course,
		Tags:       append([]string(nil), in.Tags...),
		UserID:     s.user.ID,
		UserName:   name,
		UserAvatar: avatar,
		Anonymous:  in.Anonymous,
		Urgent:     in.Urgent,
		CreatedAt:  time.Now(),
	}

	s.questions = append([]model.Question{q}, s.questions...)
	s.awardKarmaLocked(ctx, model.KarmaAskQuestion)

	s.logger.Info("question created",
		slog.String("id", q.ID),
		slog.String("course", q.Course),
		slog.Bool("anonymous", q.Anonymous),
	)

	return &q, nil
}

// ResourceInput carries the fields a resource is created from. There is no
// anonymity option — resources are always attributed.
type ResourceInput struct {
	Title       string
	Description string
	Course      string
	Tags        []string
	Link        string
}

// AddResource creates a resource authored by the session user, prepends it,
// and awards the share-resource karma reward.
func (s *Store) AddResource(ctx context.Context, in ResourceInput) (*model.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, apperror.Unauthorized("sign in to share a resource")
	}

	r := model.Resource{
		ID:          xid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Course:      in.Course,
		Tags:        append([]string(nil), in.Tags...),
		Link:        in.Link,
		UserID:      s.user.ID,
		UserName:    s.user.Name,
		CreatedAt:   time.Now(),
	}

	s.resources = append([]model.Resource{r}, s.resources...)
	s.awardKarmaLocked(ctx, model.KarmaShareResource)

	s.logger.Info("resource created",
		slog.String("id", r.ID),
		slog.String("course", r.Course),
	)

	return &r, nil
}

// AnswerInput carries the fields an answer is created from.
type AnswerInput struct {
	QuestionID string
	Content    string
	Anonymous  bool
}

// AddAnswer creates an answer attached to the given question ID and awards
// the answer-question karma reward.
//
// There is no existence check against the question collection: an answer to
// an unknown ID is accepted and simply never displays. The parent's
// AnswerCount is incremented only when the question is found — a miss does
// not fail the creation.
func (s *Store) AddAnswer(ctx context.Context, in AnswerInput) (*model.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, apperror.Unauthorized("sign in to answer")
	}

	name, avatar := s.user.Name, s.user.Avatar
	if in.Anonymous {
		name, avatar = model.AnonymousName, model.AnonymousAvatar
	}

	a := model.Answer{
		ID:         xid.New().String(),
		QuestionID: in.QuestionID,
		Content:    in.Content,
		UserID:     s.user.ID,
		UserName:   name,
		UserAvatar: avatar,
		Anonymous:  in.Anonymous,
		CreatedAt:  time.Now(),
	}

	s.answers = append([]model.Answer{a}, s.answers...)

	for i := range s.questions {
		if s.questions[i].ID == in.QuestionID {
			qs := append([]model.Question(nil), s.questions...)
			qs[i].AnswerCount++
			s.questions = qs
			break
		}
	}

	s.awardKarmaLocked(ctx, model.KarmaAnswerQuestion)

	s.logger.Info("answer created",
		slog.String("id", a.ID),
		slog.String("questionID", a.QuestionID),
	)

	return &a, nil
}

// Vote applies a +1 or -1 to the record matching targetID in the collection
// selected by kind. It reports whether the vote was applied.
//
// DEDUP RULE:
// Each target ID accepts at most one vote per session lifetime, in either
// direction; a repeat vote is a silent no-op (applied=false, no error). The
// target is locked even when no record matches — the ID is spent either way.
//
// An upvote awards the receive-upvote karma reward to the *session user*
// (the voter), matching the current product behavior; when logged out the
// award is silently skipped but the vote still counts.
func (s *Store) Vote(ctx context.Context, targetID string, kind VoteKind, value int) (bool, error) {
	if value != 1 && value != -1 {
		return false, apperror.ValidationFailed("value", "vote value must be +1 or -1")
	}
	switch kind {
	case VoteQuestion, VoteResource, VoteAnswer:
	default:
		return false, apperror.ValidationFailed("type",
			fmt.Sprintf("unknown vote target type %q", kind))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.voted[targetID]; dup {
		return false, nil
	}
	s.voted[targetID] = struct{}{}

	switch kind {
	case VoteQuestion:
		for i := range s.questions {
			if s.questions[i].ID == targetID {
				qs := append([]model.Question(nil), s.questions...)
				qs[i].Votes += value
				s.questions = qs
				break
			}
		}
	case VoteResource:
		for i := range s.resources {
			if s.resources[i].ID == targetID {
				rs := append([]model.Resource(nil), s.resources...)
				rs[i].Votes += value
				s.resources = rs
				break
			}
		}
	case VoteAnswer:
		for i := range s.answers {
			if s.answers[i].ID == targetID {
				as := append([]model.Answer(nil), s.answers...)
				as[i].Votes += value
				s.answers = as
				break
			}
		}
	}

	if value > 0 {
		s.awardKarmaLocked(ctx, model.KarmaReceiveUpvote)
	}

	return true, nil
}

// UpdateKarma adds amount to the session user's karma and persists the
// updated record. A silent no-op when logged out.
func (s *Store) UpdateKarma(ctx context.Context, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.awardKarmaLocked(ctx, amount)
}

// awardKarmaLocked mutates the session user's karma, keeps the roster entry
// in sync, and re-saves the identity slot. Caller must hold s.mu.
func (s *Store) awardKarmaLocked(ctx context.Context, amount int) {
	if s.user == nil {
		return
	}
	s.user.Karma += amount
	s.upsertRosterLocked(*s.user)
	s.persistUserLocked(ctx)
}

// upsertRosterLocked replaces the roster entry with the same ID, or appends
// a new one. Caller must hold s.mu.
func (s *Store) upsertRosterLocked(user model.User) {
	for i := range s.users {
		if s.users[i].ID == user.ID {
			users := append([]model.User(nil), s.users...)
			users[i] = user
			s.users = users
			return
		}
	}
	s.users = append(append([]model.User(nil), s.users...), user)
}

// persistUserLocked writes the session user to the identity slot. A write
// failure is logged, not returned — the in-memory session stays valid.
// Caller must hold s.mu.
func (s *Store) persistUserLocked(ctx context.Context) {
	if s.user == nil {
		return
	}
	if err := s.slot.Save(ctx, s.user); err != nil {
		s.logger.Warn("failed to persist session user",
			slog.String("userID", s.user.ID),
			slog.String("error", err.Error()),
		)
	}
}
