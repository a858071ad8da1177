package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Initial state ----

func TestHTTPTransport_InitialState(t *testing.T) {
	tr := NewHTTPTransport(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, tr.Status())
	assert.False(t, tr.HeadersSent())
	assert.False(t, tr.Terminated())
	assert.Equal(t, 0, tr.Size())
}

// ---- WriteStatus ----

func TestHTTPTransport_WriteStatus_PendingUntilBody(t *testing.T) {
	rr := httptest.NewRecorder()
	tr := NewHTTPTransport(rr)

	tr.WriteStatus(http.StatusCreated)
	tr.WriteStatus(http.StatusAccepted)

	assert.Equal(t, http.StatusAccepted, tr.Status())
	assert.False(t, rr.Flushed)
	assert.False(t, tr.HeadersSent())

	require.NoError(t, tr.WriteBody([]byte("ok")))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.True(t, tr.HeadersSent())
}

func TestHTTPTransport_WriteStatus_IgnoredAfterHeadersSent(t *testing.T) {
	rr := httptest.NewRecorder()
	tr := NewHTTPTransport(rr)

	require.NoError(t, tr.WriteBody([]byte("first")))
	tr.WriteStatus(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, tr.Status())
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- WriteBody ----

func TestHTTPTransport_WriteBody_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		writes   []string
		wantBody string
		wantSize int
	}{
		{
			name:     "single write",
			status:   http.StatusOK,
			writes:   []string{"hello"},
			wantBody: "hello",
			wantSize: 5,
		},
		{
			name:     "multiple writes accumulate",
			status:   http.StatusCreated,
			writes:   []string{"foo", "bar"},
			wantBody: "foobar",
			wantSize: 6,
		},
		{
			name:     "no content drops body",
			status:   http.StatusNoContent,
			writes:   []string{"ignored"},
			wantBody: "",
			wantSize: 0,
		},
		{
			name:     "not modified drops body",
			status:   http.StatusNotModified,
			writes:   []string{"ignored"},
			wantBody: "",
			wantSize: 0,
		},
		{
			name:     "empty write",
			status:   http.StatusOK,
			writes:   []string{""},
			wantBody: "",
			wantSize: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tr := NewHTTPTransport(rr)
			tr.WriteStatus(tt.status)

			for _, w := range tt.writes {
				require.NoError(t, tr.WriteBody([]byte(w)))
			}

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantSize, tr.Size())
		})
	}
}

func TestHTTPTransport_WriteBody_AfterTerminate(t *testing.T) {
	tr := NewHTTPTransport(httptest.NewRecorder())

	require.NoError(t, tr.Terminate(http.StatusOK))

	err := tr.WriteBody([]byte("late"))
	assert.ErrorIs(t, err, ErrTerminated)
}

// ---- Terminate ----

func TestHTTPTransport_Terminate_WritesStatusWhenNothingSent(t *testing.T) {
	rr := httptest.NewRecorder()
	tr := NewHTTPTransport(rr)

	require.NoError(t, tr.Terminate(http.StatusForbidden))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.True(t, tr.HeadersSent())
	assert.True(t, tr.Terminated())
	assert.True(t, rr.Flushed)
}

func TestHTTPTransport_Terminate_KeepsTransmittedStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	tr := NewHTTPTransport(rr)
	tr.WriteStatus(http.StatusAccepted)
	require.NoError(t, tr.WriteBody([]byte("body")))

	require.NoError(t, tr.Terminate(http.StatusInternalServerError))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, http.StatusAccepted, tr.Status())
}

func TestHTTPTransport_Terminate_Twice(t *testing.T) {
	tr := NewHTTPTransport(httptest.NewRecorder())

	require.NoError(t, tr.Terminate(http.StatusOK))
	assert.ErrorIs(t, tr.Terminate(http.StatusOK), ErrTerminated)
}

// ---- Header ----

func TestHTTPTransport_HeaderProxiesToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	tr := NewHTTPTransport(rr)

	tr.Header().Set("X-Custom", "value")
	require.NoError(t, tr.Terminate(http.StatusTeapot))

	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
