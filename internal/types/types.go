package types

import "github.com/google/uuid"

// ProfileName names a set of connection settings in the config file.
type ProfileName string

// RequestId identifies one CLI invocation in the logs.
type RequestId uuid.UUID

func NewRequestId() RequestId {
	return RequestId(uuid.New())
}

func (u RequestId) String() string {
	return uuid.UUID(u).String()
}

func (u RequestId) IsNil() bool {
	return u == RequestId(uuid.Nil)
}
