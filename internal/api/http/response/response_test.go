package response

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Bytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "ok carries json and cors headers",
			resp: OK(`{"id":1}`),
			want: "HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nAccess-Control-Allow-Origin: *\r\nAccess-Control-Allow-Methods: GET, POST, PUT, DELETE\r\nAccess-Control-Allow-Headers: Content-Type\r\n\r\n{\"id\":1}",
		},
		{
			name: "empty ok for preflight",
			resp: OK(""),
			want: okHead,
		},
		{
			name: "not found has a bare status line",
			resp: NotFound(MsgNotFound),
			want: "HTTP/1.1 404 NOT FOUND\r\n\r\n404 NOT FOUND",
		},
		{
			name: "internal error",
			resp: InternalError(MsgInternalError),
			want: "HTTP/1.1 500 INTERNAL ERROR\r\n\r\nInternal Error",
		},
		{
			name: "payload too large",
			resp: PayloadTooLarge(),
			want: "HTTP/1.1 413 PAYLOAD TOO LARGE\r\n\r\nRequest too large",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, string(tt.resp.Bytes()))
		})
	}
}

func TestStatus_Code(t *testing.T) {
	assert.Equal(t, 200, StatusOK.Code())
	assert.Equal(t, 404, StatusNotFound.Code())
	assert.Equal(t, 500, StatusInternalError.Code())
	assert.Equal(t, 413, StatusPayloadTooLarge.Code())
}

func TestJSON(t *testing.T) {
	t.Run("encodes value", func(t *testing.T) {
		resp, err := JSON([]int{1, 2})
		require.NoError(t, err)
		assert.Equal(t, OK("[1,2]"), resp)
	})

	t.Run("unencodable value yields internal error", func(t *testing.T) {
		resp, err := JSON(math.Inf(1))
		require.Error(t, err)
		assert.Equal(t, InternalError(MsgInternalError), resp)
	})
}

func TestResponse_WriteTo(t *testing.T) {
	var buf bytes.Buffer

	n, err := NotFound(MsgRouteNotFound).WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "HTTP/1.1 404 NOT FOUND\r\n\r\nThis route does not exists on our service", buf.String())
}
