package slack

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// mockSlackServer creates a test HTTP server that mocks Slack API responses
// and records the form values of every request it receives
type mockSlackServer struct {
	server   *httptest.Server
	handlers map[string]http.HandlerFunc

	mu       sync.Mutex
	requests []url.Values
}

func newMockSlackServer() *mockSlackServer {
	m := &mockSlackServer{
		handlers: make(map[string]http.HandlerFunc),
	}

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		_ = r.ParseForm()
		m.mu.Lock()
		m.requests = append(m.requests, r.Form)
		m.mu.Unlock()

		if handler, ok := m.handlers[path]; ok {
			handler(w, r)
			return
		}

		http.Error(w, "mock not found: "+path, http.StatusNotFound)
	}))

	return m
}

func (m *mockSlackServer) close() {
	m.server.Close()
}

func (m *mockSlackServer) addHandler(path string, handler http.HandlerFunc) {
	m.handlers[path] = handler
}

func (m *mockSlackServer) requestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockSlackServer) request(i int) url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[i]
}
