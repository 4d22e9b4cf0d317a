package client

import "errors"

// errSyncIncomplete is returned when a push left changes queued or a pull
// could not fetch the remote collection.
var errSyncIncomplete = errors.New("sync incomplete, see 'flashcards status'")
