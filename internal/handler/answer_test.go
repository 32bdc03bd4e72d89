package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studyhub/studyhub/internal/handler"
	"github.com/studyhub/studyhub/internal/model"
)

func TestAnswerHandler_HandleCreate(t *testing.T) {
	logger := testLogger()

	t.Run("valid answer bumps the answer count", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		h := handler.NewAnswerHandler(st, logger)

		reqBody := `{"questionId":"q1","content":"Work the chain rule backwards."}`
		req := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var a model.Answer
		err := json.NewDecoder(rr.Body).Decode(&a)
		assert.NoError(t, err)
		assert.Equal(t, "q1", a.QuestionID)
		assert.False(t, a.IsBest)

		q, err := st.QuestionByID("q1")
		assert.NoError(t, err)
		assert.Equal(t, 4, q.AnswerCount) // seeded at 3
	})

	t.Run("unknown question is still accepted", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		h := handler.NewAnswerHandler(st, logger)

		reqBody := `{"questionId":"ghost","content":"hello?"}`
		req := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("missing content", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		h := handler.NewAnswerHandler(st, logger)

		reqBody := `{"questionId":"q1","content":""}`
		req := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("requires a session", func(t *testing.T) {
		st := newTestStore()
		h := handler.NewAnswerHandler(st, logger)

		reqBody := `{"questionId":"q1","content":"c"}`
		req := httptest.NewRequest(http.MethodPost, "/api/answers", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
