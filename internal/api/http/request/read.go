package request

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyRequest is returned when the peer sent nothing.
	ErrEmptyRequest = errors.New("empty request")
	// ErrRequestTooLarge is returned when headers plus body exceed the limit.
	ErrRequestTooLarge = errors.New("request too large")
)

// Read reads one request from r, at most maxBytes long.
//
// Headers are read up to the blank line. With a Content-Length the body is
// read in full; without one the body is whatever arrived together with the
// headers. EOF before the blank line parses what was received.
func Read(r io.Reader, maxBytes int64) (*Request, error) {
	br := bufio.NewReader(io.LimitReader(r, maxBytes+1))

	var head bytes.Buffer
	complete := false
	for {
		line, err := br.ReadBytes('\n')
		head.Write(line)
		if int64(head.Len()) > maxBytes {
			return nil, ErrRequestTooLarge
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read request head: %w", err)
		}
		if isBlankLine(line) {
			complete = true
			break
		}
	}

	if head.Len() == 0 {
		return nil, ErrEmptyRequest
	}
	if !complete {
		return Parse(head.Bytes()), nil
	}

	body, err := readBody(br, head.Bytes(), maxBytes-int64(head.Len()))
	if err != nil {
		return nil, err
	}

	return Parse(append(head.Bytes(), body...)), nil
}

func readBody(br *bufio.Reader, head []byte, remaining int64) ([]byte, error) {
	length := Parse(head).ContentLength

	if length < 0 {
		n := br.Buffered()
		if int64(n) > remaining {
			return nil, ErrRequestTooLarge
		}
		buffered, _ := br.Peek(n)
		return bytes.Clone(buffered), nil
	}

	if length > remaining {
		return nil, ErrRequestTooLarge
	}

	body := make([]byte, length)
	n, err := io.ReadFull(br, body)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	return body[:n], nil
}

func isBlankLine(line []byte) bool {
	return bytes.Equal(line, []byte("\r\n")) || bytes.Equal(line, []byte("\n"))
}
