package gotrue

import (
	"context"
	"net/http"
	"net/url"
)

// contextTransport binds a request-scoped context to every outgoing call and
// optionally appends query parameters the client library has no field for.
type contextTransport struct {
	ctx   context.Context
	base  http.RoundTripper
	query url.Values
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(t.ctx)
	if len(t.query) > 0 {
		q := out.URL.Query()
		for k, vs := range t.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		out.URL.RawQuery = q.Encode()
	}

	return t.base.RoundTrip(out)
}
