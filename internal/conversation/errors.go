package conversation

import "errors"

// ErrHistoryTruncated is returned by Commit when the proposed history is
// shorter than the stored one. History is append-only within a session.
var ErrHistoryTruncated = errors.New("conversation history is append-only")
