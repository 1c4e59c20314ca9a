package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dtroode/users-server/internal/model"
)

var (
	// ErrInvalidID is returned when the trailing segment is not a decimal int32.
	ErrInvalidID = errors.New("invalid user id")
	// ErrInvalidBody is returned when the body does not decode to a user.
	ErrInvalidBody = errors.New("invalid user body")
)

// ParseID parses a decimal user identifier.
func ParseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidID, s)
	}
	return int32(id), nil
}

// User decodes the body as a user. Name and email must be present as strings;
// id is optional.
func (r *Request) User() (model.User, error) {
	return DecodeUser(r.Body)
}

// DecodeUser decodes a JSON user payload. Keys match exactly and may appear once.
func DecodeUser(body []byte) (model.User, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return model.User{}, fmt.Errorf("%w: empty body", ErrInvalidBody)
	}

	fields, err := decodeObject(body)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	var user model.User
	if err := decodeField(fields, "name", &user.Name); err != nil {
		return model.User{}, err
	}
	if err := decodeField(fields, "email", &user.Email); err != nil {
		return model.User{}, err
	}
	if raw, ok := fields["id"]; ok {
		var id *int32
		if err := json.Unmarshal(raw, &id); err != nil {
			return model.User{}, fmt.Errorf("%w: field id: %v", ErrInvalidBody, err)
		}
		if id != nil {
			user.ID = *id
		}
	}

	return user, nil
}

// decodeField decodes a required, non-null string field.
func decodeField(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: missing field %s", ErrInvalidBody, key)
	}

	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: field %s: %v", ErrInvalidBody, key, err)
	}
	if v == nil {
		return fmt.Errorf("%w: null field %s", ErrInvalidBody, key)
	}

	*dst = *v
	return nil
}

// decodeObject splits a single JSON object into its raw members, rejecting
// duplicate keys and anything after the closing brace.
func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("body is not an object")
	}

	fields := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("duplicate field %s", key)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		fields[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after object")
	}

	return fields, nil
}
