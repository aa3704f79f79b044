package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntry runs next behind withLogging and returns the access log line.
func logEntry(t *testing.T, next http.HandlerFunc) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	log := logger.New(&buf, "test")

	req := httptest.NewRequest(http.MethodGet, "/transfers?x=1", nil)
	req = req.WithContext(log.WithContext(req.Context()))

	h := &Handler{logger: log}
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	entry := logEntry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/transfers?x=1", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	entry := logEntry(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestWithLogging_ServerErrorAtErrorLevel(t *testing.T) {
	entry := logEntry(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})

	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, http.StatusAccepted, w.statusOrOK())
	assert.Equal(t, 2, w.size)
	assert.Same(t, rec, w.Unwrap())
}
