// Package uuid wraps github.com/google/uuid so that gin can bind UUIDs
// from query strings.
package uuid

import (
	guuid "github.com/google/uuid"
)

type UUID struct {
	guuid.UUID
}

// Nil is the zero UUID, all bits set to zero.
var Nil UUID

func New() UUID {
	return UUID{guuid.New()}
}

func NewString() string {
	return guuid.NewString()
}

// UnmarshalParam implements gin's binding.BindUnmarshaler. An empty
// parameter binds to Nil, everything else has to parse as a UUID.
func (u *UUID) UnmarshalParam(param string) error {
	if param == "" {
		*u = Nil
		return nil
	}

	id, err := guuid.Parse(param)
	if err != nil {
		return err
	}

	*u = UUID{id}
	return nil
}
