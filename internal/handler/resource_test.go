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

func TestResourceHandler_HandleList(t *testing.T) {
	st := newTestStore()
	h := handler.NewResourceHandler(st, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/resources?search=cheat", nil)
	rr := httptest.NewRecorder()

	h.HandleList(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resources []model.Resource
	err := json.NewDecoder(rr.Body).Decode(&resources)
	assert.NoError(t, err)
	assert.Len(t, resources, 1)
	assert.Equal(t, "r1", resources[0].ID)
}

func TestResourceHandler_HandleCreate(t *testing.T) {
	logger := testLogger()

	t.Run("valid resource", func(t *testing.T) {
		st := newTestStore()
		user := loginTestUser(t, st)
		h := handler.NewResourceHandler(st, logger)

		reqBody := `{"title":"Linear algebra notes","description":"Full semester notes",` +
			`"course":"MATH220","tags":"notes, eigenvalues","link":"https://example.edu/notes.pdf"}`
		req := httptest.NewRequest(http.MethodPost, "/api/resources", bytes.NewBufferString(reqBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var res model.Resource
		err := json.NewDecoder(rr.Body).Decode(&res)
		assert.NoError(t, err)
		assert.Equal(t, "Linear algebra notes", res.Title)
		assert.Equal(t, []string{"notes", "eigenvalues"}, res.Tags)
		assert.Equal(t, user.Name, res.UserName)

		assert.Equal(t, res.ID, st.Resources()[0].ID)
		assert.Equal(t, user.Karma+model.KarmaShareResource, st.CurrentUser().Karma)
	})

	t.Run("missing link", func(t *testing.T) {
		st := newTestStore()
		loginTestUser(t, st)
		h := handler.NewResourceHandler(st, logger)

		reqBody := `{"title":"Notes","description":"d"}`
		req := httptest.NewRequest(http.MethodPost, "/api/resources", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("requires a session", func(t *testing.T) {
		st := newTestStore()
		h := handler.NewResourceHandler(st, testLogger())

		reqBody := `{"title":"Notes","link":"https://example.edu/n.pdf"}`
		req := httptest.NewRequest(http.MethodPost, "/api/resources", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
