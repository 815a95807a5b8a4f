package tmdb

import "net/http"

// roundTripFunc lets tests stub the upstream API without a listener.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
