package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/testutil"
)

type recordingHandler struct {
	called string
}

func (h *recordingHandler) Create(context.Context, *request.Request) response.Response {
	h.called = "create"
	return response.OK("create")
}

func (h *recordingHandler) ReadOne(context.Context, *request.Request) response.Response {
	h.called = "read_one"
	return response.OK("read_one")
}

func (h *recordingHandler) ReadAll(context.Context, *request.Request) response.Response {
	h.called = "read_all"
	return response.OK("read_all")
}

func (h *recordingHandler) Update(context.Context, *request.Request) response.Response {
	h.called = "update"
	return response.OK("update")
}

func (h *recordingHandler) Delete(context.Context, *request.Request) response.Response {
	h.called = "delete"
	return response.OK("delete")
}

func TestRouter_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		namespace string
		raw       string
		want      Route
	}{
		{name: "preflight on users", raw: "OPTIONS /api/x/users HTTP/1.1\r\n\r\n", want: RoutePreflight},
		{name: "preflight on any path", raw: "OPTIONS /anything HTTP/1.1\r\n\r\n", want: RoutePreflight},
		{name: "create", raw: "POST /api/x/users HTTP/1.1\r\n\r\n", want: RouteCreate},
		{name: "create with trailing segment", raw: "POST /api/x/users/1 HTTP/1.1\r\n\r\n", want: RouteCreate},
		{name: "read one", raw: "GET /api/x/users/1 HTTP/1.1\r\n\r\n", want: RouteReadOne},
		{name: "read one with empty id", raw: "GET /api/x/users/ HTTP/1.1\r\n\r\n", want: RouteReadOne},
		{name: "read all", raw: "GET /api/x/users HTTP/1.1\r\n\r\n", want: RouteReadAll},
		{name: "read all with query", raw: "GET /api/x/users?limit=5 HTTP/1.1\r\n\r\n", want: RouteReadAll},
		{name: "update", raw: "PUT /api/x/users/1 HTTP/1.1\r\n\r\n", want: RouteUpdate},
		{name: "delete", raw: "DELETE /api/x/users/1 HTTP/1.1\r\n\r\n", want: RouteDelete},
		{name: "put on collection", raw: "PUT /api/x/users HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "delete on collection", raw: "DELETE /api/x/users HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "patch", raw: "PATCH /api/x/users/1 HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "lowercase method", raw: "get /api/x/users HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "other collection", raw: "GET /api/x/orders HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "missing namespace", raw: "GET /api/users HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "empty namespace segment", raw: "GET /api//users HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "root", raw: "GET / HTTP/1.1\r\n\r\n", want: RouteNotFound},
		{name: "malformed request line", raw: "garbage\r\n\r\n", want: RouteNotFound},
		{name: "namespace match", namespace: "go", raw: "GET /api/go/users HTTP/1.1\r\n\r\n", want: RouteReadAll},
		{name: "namespace mismatch", namespace: "go", raw: "GET /api/rust/users HTTP/1.1\r\n\r\n", want: RouteNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(&recordingHandler{}, tt.namespace, testutil.MakeNoopLogger())
			assert.Equal(t, tt.want, r.Match(request.Parse([]byte(tt.raw))))
		})
	}
}

func TestRouter_Dispatch(t *testing.T) {
	tests := []struct {
		raw        string
		wantCalled string
		want       response.Response
	}{
		{raw: "OPTIONS /api/x/users HTTP/1.1\r\n\r\n", want: response.OK("")},
		{raw: "POST /api/x/users HTTP/1.1\r\n\r\n", wantCalled: "create", want: response.OK("create")},
		{raw: "GET /api/x/users/1 HTTP/1.1\r\n\r\n", wantCalled: "read_one", want: response.OK("read_one")},
		{raw: "GET /api/x/users HTTP/1.1\r\n\r\n", wantCalled: "read_all", want: response.OK("read_all")},
		{raw: "PUT /api/x/users/1 HTTP/1.1\r\n\r\n", wantCalled: "update", want: response.OK("update")},
		{raw: "DELETE /api/x/users/1 HTTP/1.1\r\n\r\n", wantCalled: "delete", want: response.OK("delete")},
		{raw: "HEAD /api/x/users HTTP/1.1\r\n\r\n", want: response.NotFound("This route does not exists on our service")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			h := &recordingHandler{}
			r := New(h, "", testutil.MakeNoopLogger())

			got := r.Register()(context.Background(), request.Parse([]byte(tt.raw)))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalled, h.called)
		})
	}
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "read_one", RouteReadOne.String())
	assert.Equal(t, "not_found", RouteNotFound.String())
}
