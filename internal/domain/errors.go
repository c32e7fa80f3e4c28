package domain

import "errors"

// Error texts are sent verbatim to the client in the acknowledgement.
var (
	ErrValidation      = errors.New("Username and room are required")
	ErrDuplicateName   = errors.New("Username is in use!")
	ErrAlreadyJoined   = errors.New("already joined a room")
	ErrProfanity       = errors.New("Profanity is not allowed!")
	ErrInvalidLocation = errors.New("Unidentified location")
	ErrNotJoined       = errors.New("not joined to a room")
	ErrNotConnected    = errors.New("connection closed")
	ErrRateLimited     = errors.New("too many messages, slow down")
)
