// Package network builds the HTTP clients used by content sources.
package network

import (
	"net/http"
	"time"

	"github.com/statepane/statepane/constant"
)

// Client is the shared client used when no timeout is configured.
var Client = New(time.Minute)

// New returns a client sharing one tuned transport, sending the statepane User-Agent.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = time.Minute
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: userAgent{next: transport},
	}
}

var transport = newTransport()

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

type userAgent struct {
	next http.RoundTripper
}

func (u userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return u.next.RoundTrip(req)
}
