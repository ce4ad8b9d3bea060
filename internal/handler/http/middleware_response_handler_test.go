package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{name: "single 200", statuses: []int{http.StatusOK}, wantStatus: http.StatusOK},
		{name: "single 403", statuses: []int{http.StatusForbidden}, wantStatus: http.StatusForbidden},
		{name: "single 503", statuses: []int{http.StatusServiceUnavailable}, wantStatus: http.StatusServiceUnavailable},
		{name: "double call keeps first", statuses: []int{http.StatusUnauthorized, http.StatusOK}, wantStatus: http.StatusUnauthorized},
		{name: "triple call keeps first", statuses: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			for _, code := range tt.statuses {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_WriteImplies200(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_WriteAfterExplicitHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	_, err := w.Write([]byte("data"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, 4, w.size)
}

func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.size)
	assert.Equal(t, 11, rec.Body.Len())
}

func TestResponseWriter_EmptyWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write(nil)

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, w.size)
	assert.Equal(t, http.StatusOK, w.status)
}
