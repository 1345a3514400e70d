package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/AndersonMairnck/frontFynanceo/repository"

	"github.com/stretchr/testify/mock"
)

// fakeAPI is a stand-in for the remote REST API. Handlers are keyed by
// "METHOD /path"; every request is recorded.
type fakeAPI struct {
	t        *testing.T
	srv      *httptest.Server
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	calls    []recordedCall
}

type recordedCall struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

func newFakeAPI(t *testing.T) *fakeAPI {
	f := &fakeAPI{t: t, handlers: map[string]http.HandlerFunc{}}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.Path
		f.mu.Lock()
		f.calls = append(f.calls, recordedCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})
		h, ok := f.handlers[key]
		f.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) handle(key string, h http.HandlerFunc) {
	f.mu.Lock()
	f.handlers[key] = h
	f.mu.Unlock()
}

// reply answers every request on key with status and the JSON encoding of v.
func (f *fakeAPI) reply(key string, status int, v any) {
	f.handle(key, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, v)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func (f *fakeAPI) callsTo(method, path string) []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedCall
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeAPI) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) client() *repository.APIClient {
	return repository.NewAPIClient(f.srv.URL, 2*time.Second, "")
}

func decodeBody(t *testing.T, c recordedCall) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(c.Body, &m); err != nil {
		t.Fatalf("decode body of %s %s: %v", c.Method, c.Path, err)
	}
	return m
}

// mockNotifier records events through testify's mock.
type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(topic string, payload any) {
	m.Called(topic, payload)
}
