package test

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

func strStartsWith(prefix string) func(x any) bool {
	res := func(x any) bool {
		str, ok := x.(string)
		if !ok {
			return false
		}
		return strings.HasPrefix(str, prefix)
	}
	return res
}

func reqUrlStartsWith(prefix string) func(x any) bool {
	res := func(x any) bool {
		req, ok := x.(*http.Request)
		if !ok {
			return false
		}
		return strings.HasPrefix(req.URL.String(), prefix)
	}
	return res
}

func makeJsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/jrd+json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}
