// Package request parses the HTTP/1.1 subset the server understands: a request
// line, headers consulted only for framing, and an optional body.
package request

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Request is the structured view of one raw HTTP request.
type Request struct {
	Method string
	// Target is the raw request target, query string included.
	Target   string
	Path     string
	Segments []string
	// ContentLength is -1 when the header is absent or unparsable and
	// math.MaxInt64 when it overflows.
	ContentLength int64
	Body          []byte
}

var (
	crlfSeparator = []byte("\r\n\r\n")
	lfSeparator   = []byte("\n\n")
)

// Parse builds a Request from an already framed buffer. It never fails:
// a malformed request line yields empty Method and Path.
func Parse(raw []byte) *Request {
	head, body := splitHead(raw)

	req := &Request{ContentLength: -1}

	lines := strings.Split(string(head), "\n")
	fields := strings.Fields(lines[0])
	if len(fields) >= 2 {
		req.Method = fields[0]
		req.Target = fields[1]
	}
	req.Path, _, _ = strings.Cut(req.Target, "?")
	if req.Path != "" {
		req.Segments = strings.Split(strings.TrimPrefix(req.Path, "/"), "/")
	}

	for _, line := range lines[1:] {
		name, value, ok := strings.Cut(strings.TrimRight(line, "\r"), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		switch {
		case err == nil && n >= 0:
			req.ContentLength = n
		case errors.Is(err, strconv.ErrRange) && n > 0:
			req.ContentLength = math.MaxInt64
		}
	}

	if req.ContentLength >= 0 && int64(len(body)) > req.ContentLength {
		body = body[:req.ContentLength]
	}
	req.Body = body

	return req
}

// splitHead cuts raw at the first blank line, CRLF or bare LF, whichever comes first.
func splitHead(raw []byte) (head, body []byte) {
	crlf := bytes.Index(raw, crlfSeparator)
	lf := bytes.Index(raw, lfSeparator)

	switch {
	case crlf >= 0 && (lf < 0 || crlf < lf):
		return raw[:crlf], raw[crlf+len(crlfSeparator):]
	case lf >= 0:
		return raw[:lf], raw[lf+len(lfSeparator):]
	default:
		return raw, nil
	}
}

// UserID returns the trailing segment after the collection name, or an empty
// string when there is none.
func (r *Request) UserID() string {
	if len(r.Segments) < 4 {
		return ""
	}
	return r.Segments[3]
}

// HasTrailingSegment reports whether the path carries a segment after the
// collection name, even an empty one as in "/api/x/users/".
func (r *Request) HasTrailingSegment() bool {
	return len(r.Segments) >= 4
}

// ID parses UserID as a decimal int32.
func (r *Request) ID() (int32, error) {
	return ParseID(r.UserID())
}
