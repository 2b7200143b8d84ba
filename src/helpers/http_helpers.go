package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
)

// MockServer is a simple HTTP server meant to be used in tests to mock
// responses. It works by matching the path of the request to a response that
// was added to the server using the AddResponse method.
//
// Example:
//
//	server := helpers.NewMockServer()
//	defer server.Close()
//
//	server.AddStringResponse("/string-path", "string body")
//	server.AddJSONResponse("/json-path", map[string]any{"key": "value"})
//
//	// Point the code under test at server.URL(). Paths without a
//	// registered response return 404.
type MockServer struct {
	server    *httptest.Server
	responses map[string]http.Response
	hitCount  map[string]int
}

func NewMockServer() *MockServer {
	mockServer := &MockServer{
		responses: make(map[string]http.Response),
		hitCount:  make(map[string]int),
	}
	server := httptest.NewServer(mockServer)
	mockServer.server = server
	return mockServer
}

func (m *MockServer) Close() {
	m.server.Close()
}

func (m *MockServer) URL() string {
	return m.server.URL
}

func (m *MockServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// `r.URL` doesn't include the protocol or host, but if we end up here we
	// know the URL is this server's URL
	url := m.URL() + r.URL.Path
	m.hitCount[url]++
	if response, ok := m.responses[url]; ok {
		w.WriteHeader(response.StatusCode)
		io.Copy(w, response.Body)
	} else {
		w.WriteHeader(http.StatusNotFound)
		slog.Warn("No response found for path", "path", url)
	}
}

func (m *MockServer) GetHitCount(path string) int {
	if !strings.HasPrefix(path, "http") {
		path = m.URL() + path
	}
	return m.hitCount[path]
}

func (m *MockServer) AddResponse(path string, response http.Response) {
	if !strings.HasPrefix(path, "http") {
		path = m.URL() + path
	}
	m.responses[path] = response
}

func (m *MockServer) AddJSONResponse(path string, body any) {
	m.AddResponse(path, NewJSONResponse(body))
}

func (m *MockServer) AddStringResponse(path string, body string) {
	m.AddResponse(path, NewStringResponse(body))
}

func (m *MockServer) Reset() {
	m.responses = make(map[string]http.Response)
	m.hitCount = make(map[string]int)
}

func NewJSONResponse(body any) http.Response {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		slog.Error("Failed to marshal response body", "error", err)
		panic(err)
	}

	return http.Response{
		StatusCode: 200,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader(jsonBody)),
	}
}

func NewStringResponse(body string) http.Response {
	return http.Response{
		StatusCode: 200,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
