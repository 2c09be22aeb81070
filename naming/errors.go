package naming

import "errors"

var (
	// ErrInvalidIdentity is returned when an Identity cannot name a bean.
	ErrInvalidIdentity = errors.New("invalid bean identity")

	// ErrIllegalState is returned when a name is requested that the bean's
	// module era does not support.
	ErrIllegalState = errors.New("illegal state")

	// ErrIndexOutOfRange is returned for a business interface index the bean
	// does not have.
	ErrIndexOutOfRange = errors.New("business interface index out of range")

	// ErrGeneratedClassNotFound is returned when no candidate name for a
	// generated class could be loaded.
	ErrGeneratedClassNotFound = errors.New("generated class not found")

	// ErrUnknownRole is returned by Name for a role it does not know.
	ErrUnknownRole = errors.New("unknown generated class role")
)
