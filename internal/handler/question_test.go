package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/studyhub/studyhub/internal/handler"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

func loginTestUser(t *testing.T, st *store.Store) *model.User {
	t.Helper()
	user, err := st.Login(context.Background(), "jdoe@state.edu")
	assert.NoError(t, err)
	return user
}

func TestQuestionHandler_HandleList(t *testing.T) {
	logger := testLogger()

	t.Run("returns seeded feed", func(t *testing.T) {
		st := newTestStore()
		h := handler.NewQuestionHandler(st, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
		rr := httptest.NewRecorder()

		h.HandleList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var questions []model.Question
		err := json.NewDecoder(rr.Body).Decode(&questions)
		assert.NoError(t, err)
		assert.Len(t, questions, 2)
	})

	t.Run("search and course filters", func(t *testing.T) {
		st := newTestStore()
		h := handler.NewQuestionHandler(st, logger)

		target := "/api/questions?search=backprop&course=" +
			url.QueryEscape("CS401: Artificial Intelligence")
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()

		h.HandleList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var questions []model.Question
		err := json.NewDecoder(rr.Body).Decode(&questions)
		assert.NoError(t, err)
		assert.Len(t, questions, 1)
		assert.Equal(t, "q1", questions[0].ID)
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		st := newTestStore()
		h := handler.NewQuestionHandler(st, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/questions?search=nonexistent", nil)
		rr := httptest.NewRecorder()

		h.HandleList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var questions []model.Question
		err := json.NewDecoder(rr.Body).Decode(&questions)
		assert.NoError(t, err)
		assert.Empty(t, questions)
	})
}

func TestQuestionHandler_HandleGet(t *testing.T) {
	logger := testLogger()

	newRouter := func(h *handler.QuestionHandler) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/api/questions/{id}", h.HandleGet)
		return r
	}

	t.Run("existing question with answers", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		answer, err := st.AddAnswer(context.Background(), store.AnswerInput{
			QuestionID: "q1",
			Content:    "Start from the chain rule.",
		})
		assert.NoError(t, err)

		r := newRouter(handler.NewQuestionHandler(st, logger))

		req := httptest.NewRequest(http.MethodGet, "/api/questions/q1", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var detail struct {
			Question model.Question `json:"question"`
			Answers  []model.Answer `json:"answers"`
		}
		err = json.NewDecoder(rr.Body).Decode(&detail)
		assert.NoError(t, err)
		assert.Equal(t, "q1", detail.Question.ID)
		assert.Len(t, detail.Answers, 1)
		assert.Equal(t, answer.ID, detail.Answers[0].ID)
	})

	t.Run("unknown question", func(t *testing.T) {
		st := newTestStore()
		r := newRouter(handler.NewQuestionHandler(st, logger))

		req := httptest.NewRequest(http.MethodGet, "/api/questions/nope", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var errRes handler.ErrorResponse
		err := json.NewDecoder(rr.Body).Decode(&errRes)
		assert.NoError(t, err)
		assert.Equal(t, "not_found", errRes.Error)
	})
}

func TestQuestionHandler_HandleCreate(t *testing.T) {
	logger := testLogger()

	t.Run("valid question with comma-separated tags", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		h := handler.NewQuestionHandler(st, logger)

		reqBody := `{"title":"Big-O of heapify?","content":"Why is building a heap O(n)?",` +
			`"course":"CS301","tags":"heaps, complexity,,analysis ","urgent":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/questions", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var q model.Question
		err := json.NewDecoder(rr.Body).Decode(&q)
		assert.NoError(t, err)
		assert.Equal(t, "Big-O of heapify?", q.Title)
		assert.Equal(t, []string{"heaps", "complexity", "analysis"}, q.Tags)
		assert.True(t, q.Urgent)
		assert.Equal(t, "jdoe", q.UserName)

		// New question leads the feed.
		assert.Equal(t, q.ID, st.Questions()[0].ID)
	})

	t.Run("anonymous question hides the author", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		h := handler.NewQuestionHandler(st, logger)

		reqBody := `{"title":"Am I failing?","content":"How is the curve computed?","anonymous":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/questions", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var q model.Question
		err := json.NewDecoder(rr.Body).Decode(&q)
		assert.NoError(t, err)
		assert.Equal(t, model.AnonymousName, q.UserName)
		assert.True(t, q.Anonymous)
	})

	t.Run("missing title", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		h := handler.NewQuestionHandler(st, logger)

		reqBody := `{"title":"  ","content":"something"}`
		req := httptest.NewRequest(http.MethodPost, "/api/questions", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("requires a session", func(t *testing.T) {
		st := newTestStore()
		h := handler.NewQuestionHandler(st, logger)

		reqBody := `{"title":"t","content":"c"}`
		req := httptest.NewRequest(http.MethodPost, "/api/questions", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var errRes handler.ErrorResponse
		err := json.NewDecoder(rr.Body).Decode(&errRes)
		assert.NoError(t, err)
		assert.Equal(t, "unauthorized", errRes.Error)
	})
}
