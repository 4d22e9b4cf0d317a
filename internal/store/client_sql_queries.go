// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The flashcards Authors

package store

// Keys of the local_state table. Each holds one JSON document.
const (
	keySets         = "flashcards_sets"
	keyFolders      = "flashcards_folders"
	keySyncQueue    = "flashcards_sync_queue"
	keyLastSyncedAt = "flashcards_last_synced_at"
	keySession      = "flashcards_session"
)

const (
	selectLocalValue = `SELECT value FROM local_state WHERE key = ?;`

	upsertLocalValue = `INSERT INTO local_state (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteLocalValue = `DELETE FROM local_state WHERE key = ?;`
)
