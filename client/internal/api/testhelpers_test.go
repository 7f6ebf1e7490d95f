package api

import (
	"fmt"
	"net/http"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

const twoUsersJSON = `{
  "results": [
    {"name": {"title": "Ms", "first": "Alice", "last": "Smith"}, "email": "alice@example.com",
     "picture": {"large": "https://img.example.com/large/1.jpg", "thumbnail": "https://img.example.com/thumb/1.jpg"}},
    {"name": {"title": "Mr", "first": "Bruno", "last": "Diaz"}, "email": "bruno@example.com",
     "picture": {"large": "https://img.example.com/large/2.jpg"}}
  ],
  "info": {"seed": "abc", "results": 2, "page": 1, "version": "1.4"}
}`
