// Package uuid wraps google/uuid so that IDs can be bound from URI and
// query parameters by gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// Parse parses s into a UUID. The nil UUID is rejected since it never
// identifies a stored resource.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil || parsed == google_uuid.Nil {
		return Nil, ErrInvalid
	}

	return UUID{parsed}, nil
}

// UnmarshalParam implements gin's BindUnmarshaler for URI and form binding.
// An empty parameter binds to Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
