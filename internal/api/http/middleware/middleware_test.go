package middleware

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/testutil"
)

func TestLogging_Wrap(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(0, &buf))

	next := func(ctx context.Context, req *request.Request) response.Response {
		return response.NotFound(response.MsgNotFound)
	}

	ctx := request.WithConnID(context.Background(), "conn-1")
	req := request.Parse([]byte("GET /api/x/users/9 HTTP/1.1\r\n\r\n"))

	resp := lg.Wrap(next)(ctx, req)

	assert.Equal(t, response.NotFound(response.MsgNotFound), resp)
	out := buf.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "conn_id=conn-1")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/api/x/users/9")
	assert.Contains(t, out, "status=404")
}

func TestRecover(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		next func(context.Context, *request.Request) response.Response
		want response.Response
	}{
		{
			name: "passes through",
			next: func(context.Context, *request.Request) response.Response {
				return response.OK("fine")
			},
			want: response.OK("fine"),
		},
		{
			name: "panic becomes internal error",
			next: func(context.Context, *request.Request) response.Response {
				panic("boom")
			},
			want: response.InternalError(response.MsgInternalError),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := Recover(testutil.MakeNoopLogger())(tt.next)
			got := h(context.Background(), request.Parse([]byte("GET / HTTP/1.1\r\n\r\n")))

			assert.Equal(t, tt.want, got)
		})
	}
}
