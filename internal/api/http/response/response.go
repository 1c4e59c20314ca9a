// Package response encodes handler outcomes as literal HTTP/1.1 responses.
// Bodies are delimited by connection close; no Content-Length is sent.
package response

import (
	"encoding/json"
	"io"
)

// Status selects one of the fixed status lines.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusInternalError
	StatusPayloadTooLarge
)

const (
	okHead = "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json\r\n" +
		"Access-Control-Allow-Origin: *\r\n" +
		"Access-Control-Allow-Methods: GET, POST, PUT, DELETE\r\n" +
		"Access-Control-Allow-Headers: Content-Type\r\n" +
		"\r\n"
	notFoundHead        = "HTTP/1.1 404 NOT FOUND\r\n\r\n"
	internalErrorHead   = "HTTP/1.1 500 INTERNAL ERROR\r\n\r\n"
	payloadTooLargeHead = "HTTP/1.1 413 PAYLOAD TOO LARGE\r\n\r\n"
)

// Literal bodies shared by handlers.
const (
	MsgInternalError   = "Internal Error"
	MsgNotFound        = "404 NOT FOUND"
	MsgRouteNotFound   = "This route does not exists on our service"
	MsgUserUpdated     = "User updated successfully"
	MsgUserDeleted     = "User deleted successfully"
	MsgUnableToDelete  = "Unable to delete user"
	MsgRequestTooLarge = "Request too large"
)

// Response is a status plus a ready-to-write body.
type Response struct {
	Status Status
	Body   string
}

// Head returns the literal status line and headers for s.
func (s Status) Head() string {
	switch s {
	case StatusOK:
		return okHead
	case StatusNotFound:
		return notFoundHead
	case StatusPayloadTooLarge:
		return payloadTooLargeHead
	default:
		return internalErrorHead
	}
}

// Code returns the numeric HTTP status for logging.
func (s Status) Code() int {
	switch s {
	case StatusOK:
		return 200
	case StatusNotFound:
		return 404
	case StatusPayloadTooLarge:
		return 413
	default:
		return 500
	}
}

func OK(body string) Response {
	return Response{Status: StatusOK, Body: body}
}

func NotFound(body string) Response {
	return Response{Status: StatusNotFound, Body: body}
}

func InternalError(body string) Response {
	return Response{Status: StatusInternalError, Body: body}
}

func PayloadTooLarge() Response {
	return Response{Status: StatusPayloadTooLarge, Body: MsgRequestTooLarge}
}

// JSON encodes v as an OK response, or an internal error when v cannot be encoded.
func JSON(v any) (Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return InternalError(MsgInternalError), err
	}
	return OK(string(data)), nil
}

// Bytes returns the full response as written on the wire.
func (r Response) Bytes() []byte {
	return []byte(r.Status.Head() + r.Body)
}

// WriteTo writes the response as a single blob.
func (r Response) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Bytes())
	return int64(n), err
}
