package models

import "time"

// SyncStatus is the process-wide replication state observed by the UI.
type SyncStatus string

const (
	// SyncIdle means no drain is running and the last one fully succeeded.
	SyncIdle SyncStatus = "idle"

	// SyncSyncing means a push drain or a pull is in progress.
	SyncSyncing SyncStatus = "syncing"

	// SyncError means the last drain left failed changes in the queue or the
	// last pull could not fetch the remote snapshot.
	SyncError SyncStatus = "error"
)

// QueueState is the persisted form of the change queue.
type QueueState struct {
	// PendingChanges is the replay order.
	PendingChanges []PendingChange `json:"pendingChanges"`

	// NextID is the identity handed to the next enqueued entry.
	NextID uint64 `json:"nextId"`

	// LastSyncedAt is set only when a drain finishes without failures.
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
}

// Session is the locally persisted login of the device owner.
type Session struct {
	UserID string    `json:"user_id"`
	Login  string    `json:"login"`
	Token  string    `json:"token"`
	At     time.Time `json:"at"`
}
