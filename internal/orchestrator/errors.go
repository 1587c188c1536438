package orchestrator

import "errors"

var (
	// ErrMissingSession is returned for a turn without a session id.
	ErrMissingSession = errors.New("session id is required")

	// ErrEmptyMessage is returned when a turn carries neither text nor
	// attachments and the session has no history to work from.
	ErrEmptyMessage = errors.New("cannot start a conversation with an empty message")
)
