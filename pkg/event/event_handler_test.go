package event

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/koffeecuptales/timeleft/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*EventHandler, *EventServiceImpl) {
	repoStub := newStubEventRepository()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 1, 10, 0, 0, 0, location)}
	service := &EventServiceImpl{repo: repoStub, clock: clock}
	handler := NewEventHandler(service)
	handler.clock = clock
	return handler, service
}

func TestHandlerCreate(t *testing.T) {

	t.Run("creates an event and returns derived countdown fields", func(t *testing.T) {
		handler, _ := setupHandlerTest(t)
		body := []byte(`{"name": "Launch", "date": "2024-01-15"}`)

		req := httptest.NewRequest(http.MethodPost, "/api/event", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.Create(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var dto EventDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.NotEmpty(t, dto.ID)
		assert.Equal(t, "Launch", dto.Name)
		assert.Equal(t, "2024-01-15", dto.Date)
		assert.Equal(t, 14, dto.DaysLeft)
		assert.Equal(t, "nearTerm", dto.Classification)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		handler, _ := setupHandlerTest(t)
		body := []byte(`{"date": "2024-01-15"}`)

		req := httptest.NewRequest(http.MethodPost, "/api/event", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		handler, _ := setupHandlerTest(t)
		body := []byte(`{"name": "Launch", "date": "15-01-2024"}`)

		req := httptest.NewRequest(http.MethodPost, "/api/event", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a whitespace-only name", func(t *testing.T) {
		handler, _ := setupHandlerTest(t)
		body := []byte(`{"name": "   ", "date": "2024-01-15"}`)

		req := httptest.NewRequest(http.MethodPost, "/api/event", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandlerGetAll(t *testing.T) {
	handler, service := setupHandlerTest(t)
	_, err := service.Create(context.Background(), "First", date(2024, time.February, 1))
	require.NoError(t, err)
	_, err = service.Create(context.Background(), "Second", date(2024, time.June, 1))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/event", nil)
	w := httptest.NewRecorder()
	handler.GetAll(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var dtos []EventDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&dtos))
	require.Len(t, dtos, 2)
	assert.Equal(t, "First", dtos[0].Name)
	assert.Equal(t, "farTerm", dtos[0].Classification)
	assert.Equal(t, "Second", dtos[1].Name)
	assert.Equal(t, 152, dtos[1].DaysLeft)
}

func TestHandlerUpdate(t *testing.T) {

	t.Run("updates an existing event", func(t *testing.T) {
		handler, service := setupHandlerTest(t)
		created, err := service.Create(context.Background(), "Original", date(2024, time.February, 1))
		require.NoError(t, err)
		body := []byte(`{"name": "Renamed", "date": "2024-03-01"}`)

		req := httptest.NewRequest(http.MethodPut, "/api/event/"+created.ID, bytes.NewBuffer(body))
		req = mux.SetURLVars(req, map[string]string{"id": created.ID})
		w := httptest.NewRecorder()
		handler.Update(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var dto EventDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, created.ID, dto.ID)
		assert.Equal(t, "Renamed", dto.Name)
		assert.Equal(t, "2024-03-01", dto.Date)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		handler, _ := setupHandlerTest(t)
		body := []byte(`{"name": "Renamed", "date": "2024-03-01"}`)

		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodPut, "/api/event/"+id, bytes.NewBuffer(body))
		req = mux.SetURLVars(req, map[string]string{"id": id})
		w := httptest.NewRecorder()
		handler.Update(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandlerDelete(t *testing.T) {

	t.Run("deletes an existing event", func(t *testing.T) {
		handler, service := setupHandlerTest(t)
		created, err := service.Create(context.Background(), "Doomed", date(2024, time.February, 1))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/event/"+created.ID, nil)
		req = mux.SetURLVars(req, map[string]string{"id": created.ID})
		w := httptest.NewRecorder()
		handler.Delete(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		events, err := service.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		handler, _ := setupHandlerTest(t)

		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodDelete, "/api/event/"+id, nil)
		req = mux.SetURLVars(req, map[string]string{"id": id})
		w := httptest.NewRecorder()
		handler.Delete(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
