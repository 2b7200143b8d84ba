package helpers

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockHttpServer(t *testing.T) {
	server := NewMockServer()
	defer server.Close()

	server.AddStringResponse("/string-path", "string body")
	server.AddJSONResponse("/json-path", map[string]any{"key": "value"})
	server.AddResponse(
		"/generic-path",
		http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader("generic body")),
		},
	)

	assert.HTTPBodyContains(t, server.ServeHTTP, "GET", server.URL()+"/string-path", nil, "string body")
	assert.HTTPBodyContains(t, server.ServeHTTP, "GET", server.URL()+"/json-path", nil, `"key":"value"`)
	assert.HTTPBodyContains(t, server.ServeHTTP, "GET", server.URL()+"/generic-path", nil, "generic body")
	assert.HTTPStatusCode(t, server.ServeHTTP, "GET", server.URL()+"/not-found", nil, 404)

	assert.Equal(t, 1, server.GetHitCount("/string-path"))
	assert.Equal(t, 1, server.GetHitCount("/json-path"))
	assert.Equal(t, 1, server.GetHitCount("/generic-path"))
	assert.Equal(t, 1, server.GetHitCount("/not-found"))
	assert.Equal(t, 0, server.GetHitCount("/not-called"))
}
