package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a buffer-backed logger in its
// context, the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "POST 200",
			method:          http.MethodPost,
			path:            "/api/mintNFT",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"ok":true}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"uri":"/api/mintNFT"`,
				`"status":200`,
				`"duration":`,
				`"size":11`,
			},
		},
		{
			name:            "GET 405",
			method:          http.MethodGet,
			path:            "/api/mintNFT",
			handlerStatus:   http.StatusMethodNotAllowed,
			handlerResponse: "Method not allowed",
			checkLogContains: []string{
				`"level":"info"`,
				`"status":405`,
				`"size":18`,
			},
		},
		{
			name:            "POST 500 is a warning",
			method:          http.MethodPost,
			path:            "/api/mintNFT",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: "Internal server error",
			checkLogContains: []string{
				`"level":"warn"`,
				`"status":500`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerResponse))
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rec.Code)
			assert.Equal(t, tt.handlerResponse, rec.Body.String())
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/health", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":2`)
}
