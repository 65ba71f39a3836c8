package server

import "errors"

// Sentinel errors returned by the credential store and auth middleware,
// mirroring the teacher's server/serr package of package-level error
// constants checked with errors.Is.
var (
	ErrBadCredentials = errors.New("the supplied API key is incorrect")
	ErrAlreadyExists  = errors.New("a credential with that ID already exists")
	ErrNotFound       = errors.New("the requested credential could not be found")
)
